package model

// Board is a named pipeline made of a fixed, ordered list of columns.
type Board struct {
	Name    string    `json:"name"`
	Columns []*Column `json:"columns"`
}

// ColumnIndex returns the position of the column with the given stage id, or -1.
func (b *Board) ColumnIndex(columnID string) int {
	for i, c := range b.Columns {
		if c.ID == columnID {
			return i
		}
	}
	return -1
}

// Column returns the column with the given stage id.
func (b *Board) Column(columnID string) (*Column, bool) {
	i := b.ColumnIndex(columnID)
	if i < 0 {
		return nil, false
	}
	return b.Columns[i], true
}
