package parser

import (
	"github.com/tomlgo/tomlgo/internal/tomlerr"
	"github.com/tomlgo/tomlgo/internal/value"
)

// navigateDottedKey resolves one intermediate segment of a dotted key
// (a.b.c = 1, or a dotted segment inside an inline table), creating a
// FlagDotted table if the segment doesn't exist yet.
func (p *Parser) navigateDottedKey(table *value.Table, key value.Key) (*value.Table, error) {
	if existing := table.Get(key.Name); existing != nil {
		existingKey, _ := table.GetKey(key.Name)
		ok := existing.IsTable() && !existing.IsFrozen() && !existing.HasHeaderBit()
		if !ok {
			start, end := int(key.Span.Start), int(key.Span.End)
			return nil, p.setError(start, &end, tomlerr.NewDottedKeyInvalidType(existingKey.Span))
		}
		tbl, _ := existing.AsTable()
		return tbl, nil
	}
	newTbl := value.NewTable()
	newTbl.Flag = value.FlagDotted
	table.Insert(key, value.TableItem(newTbl, key.Span))
	return newTbl, nil
}

// navigateHeaderIntermediate resolves a non-final segment of a table header
// path (the "a" and "b" in [a.b.c]), creating an implicit table if needed
// and descending into the last element when the segment already names an
// array-of-tables.
func (p *Parser) navigateHeaderIntermediate(key value.Key, headerStart, headerEnd uint32) error {
	tbl := p.currentTable()
	if existing := tbl.Get(key.Name); existing != nil {
		existingKey, _ := tbl.GetKey(key.Name)
		switch {
		case existing.IsTable():
			if existing.IsFrozen() {
				start, end := int(key.Span.Start), int(key.Span.End)
				return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existingKey.Span))
			}
			t, _ := existing.AsTable()
			p.pushTableCtx(t, nil)
			return nil
		case existing.IsArray() && existing.IsArrayOfTables():
			arr, _ := existing.AsArray()
			last := arr.Last()
			if last == nil || !last.IsTable() {
				start, end := int(key.Span.Start), int(key.Span.End)
				return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existingKey.Span))
			}
			lastTbl, _ := last.AsTable()
			p.pushTableCtx(lastTbl, arr)
			return nil
		default:
			start, end := int(key.Span.Start), int(key.Span.End)
			return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existingKey.Span))
		}
	}
	newTbl := value.NewTable()
	newTbl.Flag = value.FlagImplicit
	tbl.Insert(key, value.TableItem(newTbl, span(headerStart, headerEnd)))
	p.pushTableCtx(newTbl, nil)
	return nil
}

// navigateHeaderTableFinal resolves the final segment of a standard table
// header [a.b.c], confirming an implicit table or creating a fresh one.
func (p *Parser) navigateHeaderTableFinal(key value.Key, headerStart, headerEnd uint32) error {
	tbl := p.currentTable()
	if existing := tbl.Get(key.Name); existing != nil {
		existingKey, _ := tbl.GetKey(key.Name)
		if !existing.IsTable() || existing.IsFrozen() {
			start, end := int(key.Span.Start), int(key.Span.End)
			return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existingKey.Span))
		}
		if existing.HasHeaderBit() {
			start, end := int(headerStart), int(headerEnd)
			return p.setError(start, &end, tomlerr.NewDuplicateTable(key.Name, existing.SpanNow()))
		}
		if existing.HasDottedBit() {
			start, end := int(key.Span.Start), int(key.Span.End)
			return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existingKey.Span))
		}
		t, _ := existing.AsTable()
		t.SetHeaderFlag()
		t.Span = span(headerStart, headerEnd)
		p.pushTableCtx(t, nil)
		return nil
	}
	newTbl := value.NewTable()
	newTbl.Flag = value.FlagHeader
	tbl.Insert(key, value.TableItem(newTbl, span(headerStart, headerEnd)))
	p.pushTableCtx(newTbl, nil)
	return nil
}

// navigateHeaderArrayFinal resolves the final segment of an array-of-tables
// header [[a.b.c]], appending a fresh table entry.
func (p *Parser) navigateHeaderArrayFinal(key value.Key, headerStart, headerEnd uint32) error {
	tbl := p.currentTable()
	entrySpan := span(headerStart, headerEnd)

	if existing := tbl.Get(key.Name); existing != nil {
		existingKey, _ := tbl.GetKey(key.Name)
		switch {
		case existing.IsArrayOfTables():
			arr, _ := existing.AsArray()
			newTbl := value.NewTable()
			newTbl.Flag = value.FlagHeader
			arr.Push(value.TableItem(newTbl, entrySpan))
			lastTbl, _ := arr.Last().AsTable()
			p.pushTableCtx(lastTbl, arr)
			return nil
		case existing.IsTable():
			start, end := int(headerStart), int(headerEnd)
			return p.setError(start, &end, tomlerr.NewRedefineAsArray())
		default:
			start, end := int(key.Span.Start), int(key.Span.End)
			return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existingKey.Span))
		}
	}

	firstEntryTbl := value.NewTable()
	firstEntryTbl.Flag = value.FlagHeader
	firstEntry := value.TableItem(firstEntryTbl, entrySpan)
	arr := value.NewArrayWithSingle(firstEntry)
	arr.Flag = value.FlagArrayOfTables
	tbl.Insert(key, value.ArrayItem(arr, entrySpan))
	lastTbl, _ := arr.Last().AsTable()
	p.pushTableCtx(lastTbl, arr)
	return nil
}

// insertValue adds key/val to table, rejecting a second definition of the
// same key.
func (p *Parser) insertValue(table *value.Table, key value.Key, val value.Item) error {
	if existing, ok := table.GetKey(key.Name); ok {
		start, end := int(key.Span.Start), int(key.Span.End)
		return p.setError(start, &end, tomlerr.NewDuplicateKey(key.Name, existing.Span))
	}
	table.Insert(key, val)
	return nil
}
