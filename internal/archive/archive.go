// Package archive exports and imports evaluation history as JSON Lines,
// optionally zstd-compressed.
package archive

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/alexanderramin/futureself/internal/domain"
)

// CompressedExt is appended to export paths when compression is on.
const CompressedExt = ".zst"

// zstdMagic is the frame header every zstd stream starts with.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// maxLineBytes bounds a single JSONL record.
const maxLineBytes = 1 << 20

// Write encodes records as JSONL to w, compressing when compress is set.
func Write(w io.Writer, records []*domain.EvaluationRecord, compress bool) error {
	if !compress {
		return writeJSONL(w, records)
	}

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	if err := writeJSONL(encoder, records); err != nil {
		encoder.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalize compression: %w", err)
	}
	return nil
}

func writeJSONL(w io.Writer, records []*domain.EvaluationRecord) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %s: %w", rec.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Read decodes JSONL records from r. Compressed input is detected by its
// zstd frame header, so callers need not know how the file was written.
func Read(r io.Reader) ([]*domain.EvaluationRecord, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		decoder, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer decoder.Close()
		src = decoder
	}

	var records []*domain.EvaluationRecord
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var rec domain.EvaluationRecord
		if err := json.Unmarshal(text, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("line %d: record has no id", line)
		}
		records = append(records, &rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return records, nil
}

// ExportPath returns path with CompressedExt appended when compress is set
// and the path does not already carry it.
func ExportPath(path string, compress bool) string {
	if compress && !strings.HasSuffix(path, CompressedExt) {
		return path + CompressedExt
	}
	return path
}

// ExportFile writes records to path, creating parent directories.
// Returns the path actually written.
func ExportFile(path string, records []*domain.EvaluationRecord, compress bool) (string, error) {
	dest := ExportPath(path, compress)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := Write(f, records, compress); err != nil {
		f.Close()
		os.Remove(dest)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return dest, nil
}

// ImportFile reads every record from path.
func ImportFile(path string) ([]*domain.EvaluationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return Read(f)
}
