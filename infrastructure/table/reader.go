package table

import (
	"airdrop-recipients/domain"
	"airdrop-recipients/domain/mimetypes"
	"airdrop-recipients/errors"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

const (
	columnAddress  = "address"
	columnAmount   = "amount"
	columnHashrate = "hashrate"

	sniffSize = 512
	bom       = "\uFEFF"
)

type options struct {
	delimiter rune
	sniff     bool
}

type Option func(*options)

// WithDelimiter sets the cell separator. Defaults to a comma.
func WithDelimiter(delimiter rune) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// WithSniff toggles the content type check done by ReadFile.
func WithSniff(sniff bool) Option {
	return func(o *options) {
		o.sniff = sniff
	}
}

func newOptions(opts []Option) options {
	o := options{delimiter: ',', sniff: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ReadFile opens path and reads it as a recipient table.
func ReadFile(path string, opts ...Option) ([]domain.AirdropRecipient, error) {
	o := newOptions(opts)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrUnreadableTable, err)
	}
	defer file.Close()

	if o.sniff {
		if err := sniff(file); err != nil {
			return nil, err
		}
	}
	return read(file, o)
}

// Read parses a recipient table from r. The first row is the header.
func Read(r io.Reader, opts ...Option) ([]domain.AirdropRecipient, error) {
	return read(r, newOptions(opts))
}

// sniff leaves the cursor at the beginning of the file.
func sniff(file *os.File) error {
	sniffBuf := make([]byte, sniffSize)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w: %w", errors.ErrUnreadableTable, err)
	}

	detected := mimetype.Detect(sniffBuf[:n])
	if !mimetypes.IsTabular(detected) {
		return fmt.Errorf("%w: content detected as %s", errors.ErrMalformedTable, detected.String())
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnreadableTable, err)
	}
	return nil
}

// layout maps each known column to its index in a row, -1 when absent.
type layout struct {
	address, amount, hashrate int
	width                     int
}

func newLayout(header []string) (layout, error) {
	l := layout{address: -1, amount: -1, hashrate: -1, width: len(header)}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, bom)
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnAddress:
			l.address = i
		case columnAmount:
			l.amount = i
		case columnHashrate:
			l.hashrate = i
		}
	}
	if l.address < 0 {
		return layout{}, fmt.Errorf("%w: %q", errors.ErrMissingColumn, columnAddress)
	}
	return l, nil
}

func read(r io.Reader, o options) ([]domain.AirdropRecipient, error) {
	reader := csv.NewReader(r)
	reader.Comma = o.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = !unicode.IsSpace(o.delimiter)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header row", errors.ErrMalformedTable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedTable, err)
	}
	l, err := newLayout(header)
	if err != nil {
		return nil, err
	}

	recipients := make([]domain.AirdropRecipient, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrMalformedTable, err)
		}
		line, _ := reader.FieldPos(0)
		if len(row) > l.width {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d",
				errors.ErrMalformedTable, line, len(row), l.width)
		}

		recipient, err := l.recipient(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errors.ErrMalformedTable, line, err)
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

func (l layout) recipient(row []string) (domain.AirdropRecipient, error) {
	amount, err := number(row, l.amount, columnAmount)
	if err != nil {
		return domain.AirdropRecipient{}, err
	}
	hashrate, err := number(row, l.hashrate, columnHashrate)
	if err != nil {
		return domain.AirdropRecipient{}, err
	}
	return domain.AirdropRecipient{
		Address:  cell(row, l.address),
		Amount:   amount,
		Hashrate: hashrate,
	}, nil
}

// cell returns "" for a missing column or a short row.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func number(row []string, index int, column string) (float64, error) {
	raw := cell(row, index)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("column %s: %q is not a finite number", column, raw)
	}
	return value, nil
}
