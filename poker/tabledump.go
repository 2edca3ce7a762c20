package poker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var dumpHeader = []string{"table", "prime_product", "rank"}

// Dump writes every entry as CSV records of table,prime_product,rank in rank
// order, preceded by a header row.
func (t *LookupTable) Dump(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dumpHeader); err != nil {
		return err
	}
	for _, e := range t.Entries() {
		record := []string{
			e.Table.String(),
			strconv.FormatUint(uint64(e.Product), 10),
			strconv.FormatUint(uint64(e.Rank), 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadLookupTable loads a table written by Dump. Besides the structural checks
// run on a freshly built table, every product must carry the rank a fresh
// build assigns it.
func ReadLookupTable(r io.Reader) (*LookupTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(dumpHeader)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrTableCorrupt, err)
	}
	for i, h := range dumpHeader {
		if header[i] != h {
			return nil, fmt.Errorf("%w: unexpected header column %q, want %q", ErrTableCorrupt, header[i], h)
		}
	}

	t := newEmptyTable()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrTableCorrupt, line, err)
		}

		var kind TableKind
		switch record[0] {
		case FlushTable.String():
			kind = FlushTable
		case UnsuitedTable.String():
			kind = UnsuitedTable
		default:
			return nil, fmt.Errorf("%w: line %d: unknown table %q", ErrTableCorrupt, line, record[0])
		}

		product, err := strconv.ParseUint(record[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: prime product: %v", ErrTableCorrupt, line, err)
		}
		rank, err := strconv.ParseUint(record[2], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rank: %v", ErrTableCorrupt, line, err)
		}

		if err := t.insert(kind, uint32(product), HandRank(rank)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	want, err := NewLookupTable()
	if err != nil {
		return nil, fmt.Errorf("build reference table: %w", err)
	}
	if err := t.matches(want); err != nil {
		return nil, err
	}
	return t, nil
}

// matches reports the first product whose rank differs from want.
func (t *LookupTable) matches(want *LookupTable) error {
	for _, e := range want.Entries() {
		var (
			got HandRank
			ok  bool
		)
		if e.Table == FlushTable {
			got, ok = t.Flush(e.Product)
		} else {
			got, ok = t.Unsuited(e.Product)
		}
		if !ok {
			return fmt.Errorf("%w: %s product %d missing", ErrTableCorrupt, e.Table, e.Product)
		}
		if got != e.Rank {
			return fmt.Errorf("%w: %s product %d has rank %d, want %d", ErrTableCorrupt, e.Table, e.Product, got, e.Rank)
		}
	}
	return nil
}
