package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	log "github.com/sirupsen/logrus"
)

// CommandLineFormatter prints the message followed by any fields as
// key=value pairs, without timestamps or levels.
type CommandLineFormatter struct{}

func (f *CommandLineFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New returns a logger writing whole lines to out. logrus holds the logger's
// mutex across formatting and writing each entry, so concurrent callers never
// interleave within a line. Debug output is enabled by verbose.
func New(out io.Writer, verbose bool) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&CommandLineFormatter{})
	l.SetLevel(log.InfoLevel)
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
