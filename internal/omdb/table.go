package omdb

// TableDic is the output table header row.
type TableDic struct {
	TableID  int `json:"TableId"`
	Name     string
	Digest   string
	Rank     int
	IsSparse bool
	ExprPos  int
	IsHidden bool
}

// TableDim is an output table dimension. DimSize includes the total item, if any.
type TableDim struct {
	DimID   int `json:"DimId"`
	Name    string
	TypeID  int `json:"TypeId"`
	IsTotal bool
	DimSize int
}

// TableDimsText is an output table dimension and its description.
type TableDimsText struct {
	Dim       *TableDim  `json:",omitempty"`
	DescrNote *DescrNote `json:",omitempty"`
}

// TableExpr is an output table expression.
type TableExpr struct {
	ExprID   int `json:"ExprId"`
	Name     string
	Decimals int
	SrcExpr  string
}

// TableExprText is an output table expression and its description.
type TableExprText struct {
	Expr      *TableExpr `json:",omitempty"`
	DescrNote *DescrNote `json:",omitempty"`
}

// TableAcc is an output table accumulator.
type TableAcc struct {
	AccID     int `json:"AccId"`
	Name      string
	IsDerived bool
	SrcAcc    string
}

// TableAccText is an output table accumulator and its description.
type TableAccText struct {
	Acc       *TableAcc  `json:",omitempty"`
	DescrNote *DescrNote `json:",omitempty"`
}

// TableText is a model output table with descriptions of table, dimensions,
// expressions and accumulators.
type TableText struct {
	Table        TableDic
	LangCode     string
	TableDescr   string
	TableNote    string
	ExprDescr    string
	ExprNote     string
	TableDimsTxt []TableDimsText
	TableExprTxt []TableExprText
	TableAccTxt  []TableAccText
}

// TableSize is the shape of output table values.
type TableSize struct {
	Rank        int
	ExprCount   int
	AccCount    int
	AllAccCount int
	DimTotal    int
	DimSize     []int
}

// EmptyTableText returns the empty output table.
func EmptyTableText() TableText {
	return TableText{
		TableDimsTxt: []TableDimsText{},
		TableExprTxt: []TableExprText{},
		TableAccTxt:  []TableAccText{},
	}
}

// EmptyTableSize returns the size of an output table which is not found.
func EmptyTableSize() TableSize {
	return TableSize{DimSize: []int{}}
}

// IsTable reports whether t has non-empty name and digest.
func IsTable(t TableDic) bool {
	return t.Name != "" && t.Digest != ""
}

// OutTableCount returns the number of output tables or zero if any of them is not valid.
func OutTableCount(md ModelText) int {
	if !IsModel(md) {
		return 0
	}
	for k := range md.TableTxt {
		if !IsTable(md.TableTxt[k].Table) {
			return 0
		}
	}
	return len(md.TableTxt)
}

// TableTextByName returns a copy of the output table by name or the empty table if not found.
func TableTextByName(md ModelText, name string) TableText {
	if !IsModel(md) || name == "" {
		return EmptyTableText()
	}
	for k := range md.TableTxt {
		if IsTable(md.TableTxt[k].Table) && md.TableTxt[k].Table.Name == name {
			return md.TableTxt[k].Clone()
		}
	}
	return EmptyTableText()
}

// TableSizeByName returns output table rank, counts of expressions and
// accumulators and dimension sizes. Derived accumulators are not counted in AccCount.
// If the table is not found, its rank does not match its dimensions, any
// dimension size is unknown or DimTotal overflows int the result is EmptyTableSize.
func TableSizeByName(md ModelText, name string) TableSize {
	t := TableTextByName(md, name)
	if !IsTable(t.Table) || t.Table.Rank != len(t.TableDimsTxt) {
		return EmptyTableSize()
	}

	ret := TableSize{
		Rank:        t.Table.Rank,
		ExprCount:   len(t.TableExprTxt),
		AllAccCount: len(t.TableAccTxt),
		DimTotal:    1,
		DimSize:     make([]int, 0, t.Table.Rank),
	}
	for _, a := range t.TableAccTxt {
		if a.Acc == nil || !a.Acc.IsDerived {
			ret.AccCount++
		}
	}
	for _, d := range t.TableDimsTxt {
		if d.Dim == nil {
			return EmptyTableSize()
		}
		n := tableDimSize(md, *d.Dim)
		if n <= 0 {
			return EmptyTableSize()
		}
		total, ok := mulSize(ret.DimTotal, n)
		if !ok {
			return EmptyTableSize()
		}
		ret.DimSize = append(ret.DimSize, n)
		ret.DimTotal = total
	}
	return ret
}

// tableDimSize is the declared dimension size or the number of type enumerators
// plus the total item.
func tableDimSize(md ModelText, dim TableDim) int {
	if dim.DimSize > 0 {
		return dim.DimSize
	}
	n := TypeEnumSizeByID(md, dim.TypeID)
	if n <= 0 {
		return 0
	}
	if dim.IsTotal {
		n++
	}
	return n
}

// Clone returns a deep copy of t.
func (t TableText) Clone() TableText {
	c := t
	if t.TableDimsTxt != nil {
		c.TableDimsTxt = make([]TableDimsText, len(t.TableDimsTxt))
		for k, d := range t.TableDimsTxt {
			if d.Dim != nil {
				dim := *d.Dim
				d.Dim = &dim
			}
			d.DescrNote = cloneDescrNote(d.DescrNote)
			c.TableDimsTxt[k] = d
		}
	}
	if t.TableExprTxt != nil {
		c.TableExprTxt = make([]TableExprText, len(t.TableExprTxt))
		for k, e := range t.TableExprTxt {
			if e.Expr != nil {
				expr := *e.Expr
				e.Expr = &expr
			}
			e.DescrNote = cloneDescrNote(e.DescrNote)
			c.TableExprTxt[k] = e
		}
	}
	if t.TableAccTxt != nil {
		c.TableAccTxt = make([]TableAccText, len(t.TableAccTxt))
		for k, a := range t.TableAccTxt {
			if a.Acc != nil {
				acc := *a.Acc
				a.Acc = &acc
			}
			a.DescrNote = cloneDescrNote(a.DescrNote)
			c.TableAccTxt[k] = a
		}
	}
	return c
}
