package cmd

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// writerHook writes every log entry to writer with its own formatter,
// used for the rotating production log file.
type writerHook struct {
	writer    io.Writer
	formatter log.Formatter
}

func (h *writerHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *writerHook) Fire(entry *log.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = h.writer.Write(line)
	return err
}
