package dashboard

import (
	"bufio"
	"encoding/csv"
	"io"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

type csvStreamer struct {
	buf     *bufio.Writer
	csv     *csv.Writer
	pending int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer}
}

func (s *csvStreamer) writeRow(row []string) error {
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pending++
	if s.pending >= csvFlushEvery {
		return s.flush()
	}
	return nil
}

func (s *csvStreamer) flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	s.pending = 0
	return s.buf.Flush()
}

// WriteCSV writes rows (header first) with CRLF line endings.
func WriteCSV(w io.Writer, rows [][]string) error {
	stream := newCSVStreamer(w)
	for _, row := range rows {
		if err := stream.writeRow(row); err != nil {
			return err
		}
	}
	return stream.flush()
}
