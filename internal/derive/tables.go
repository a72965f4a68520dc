// Package derive implements the derived-field computation engine behind the
// product creation and edit forms: code/name generation, the strategy pricing
// cascade, the field dependency orchestrator, and the debounced item-code
// uniqueness check. Everything except the uniqueness checker is pure and
// synchronous; callers hand in a snapshot of the reference lists and the
// current draft values and get derived values back.
package derive

// Supplier carries the codes a sourcing partner contributes to generated codes.
type Supplier struct {
	ID           int64
	Name         string
	ShortCode    string
	CombinedCode string
}

// Pattern is a tile pattern reference item.
type Pattern struct {
	ID        int64
	Name      string
	ShortName string
	ShortCode string
}

// Size stores tile dimensions in fixed-point tenths of a centimeter.
type Size struct {
	ID     int64
	Wide   float64
	Length float64
}

// Color is a tile color reference item.
type Color struct {
	ID   int64
	Name string
}

// BodyColor is the body-color reference item for a tile.
type BodyColor struct {
	ID   int64
	Name string
}

// Material is a tile material reference item.
type Material struct {
	ID        int64
	Name      string
	ShortName string
}

// Surface is a tile surface reference item; the first letter of ShortCode
// selects the display surface name.
type Surface struct {
	ID        int64
	Name      string
	ShortCode string
}

// Origin is a manufacturing origin reference item.
type Origin struct {
	ID        int64
	Name      string
	UpperName string
}

// CompanyCode is an internal company prefix used in SKUs and SAPO names.
type CompanyCode struct {
	ID       int64
	CodeName string
}

// Processing is a post-processing reference item.
type Processing struct {
	ID   int64
	Name string
}

// Factory is a manufacturing plant reference item.
type Factory struct {
	ID   int64
	Name string
}

// Tax is a VAT rate reference item.
type Tax struct {
	ID   int64
	Name string
	Rate float64
}

// Tables is an immutable snapshot of the session reference lists, keyed by id.
// The engine only ever reads from it, so one snapshot may be shared across any
// number of concurrent derivations.
type Tables struct {
	Suppliers    map[int64]Supplier
	Patterns     map[int64]Pattern
	Sizes        map[int64]Size
	Colors       map[int64]Color
	BodyColors   map[int64]BodyColor
	Materials    map[int64]Material
	Surfaces     map[int64]Surface
	Origins      map[int64]Origin
	CompanyCodes map[int64]CompanyCode
	Processings  map[int64]Processing
	Factories    map[int64]Factory
	Taxes        map[int64]Tax
}

// NewTables returns an empty snapshot ready to be populated by the loader.
func NewTables() *Tables {
	return &Tables{
		Suppliers:    map[int64]Supplier{},
		Patterns:     map[int64]Pattern{},
		Sizes:        map[int64]Size{},
		Colors:       map[int64]Color{},
		BodyColors:   map[int64]BodyColor{},
		Materials:    map[int64]Material{},
		Surfaces:     map[int64]Surface{},
		Origins:      map[int64]Origin{},
		CompanyCodes: map[int64]CompanyCode{},
		Processings:  map[int64]Processing{},
		Factories:    map[int64]Factory{},
		Taxes:        map[int64]Tax{},
	}
}

func (t *Tables) Supplier(id int64) (Supplier, bool) {
	if t == nil || id == 0 {
		return Supplier{}, false
	}
	v, ok := t.Suppliers[id]
	return v, ok
}

func (t *Tables) Pattern(id int64) (Pattern, bool) {
	if t == nil || id == 0 {
		return Pattern{}, false
	}
	v, ok := t.Patterns[id]
	return v, ok
}

func (t *Tables) Size(id int64) (Size, bool) {
	if t == nil || id == 0 {
		return Size{}, false
	}
	v, ok := t.Sizes[id]
	return v, ok
}

func (t *Tables) Color(id int64) (Color, bool) {
	if t == nil || id == 0 {
		return Color{}, false
	}
	v, ok := t.Colors[id]
	return v, ok
}

func (t *Tables) BodyColor(id int64) (BodyColor, bool) {
	if t == nil || id == 0 {
		return BodyColor{}, false
	}
	v, ok := t.BodyColors[id]
	return v, ok
}

func (t *Tables) Material(id int64) (Material, bool) {
	if t == nil || id == 0 {
		return Material{}, false
	}
	v, ok := t.Materials[id]
	return v, ok
}

func (t *Tables) Surface(id int64) (Surface, bool) {
	if t == nil || id == 0 {
		return Surface{}, false
	}
	v, ok := t.Surfaces[id]
	return v, ok
}

func (t *Tables) Origin(id int64) (Origin, bool) {
	if t == nil || id == 0 {
		return Origin{}, false
	}
	v, ok := t.Origins[id]
	return v, ok
}

func (t *Tables) CompanyCode(id int64) (CompanyCode, bool) {
	if t == nil || id == 0 {
		return CompanyCode{}, false
	}
	v, ok := t.CompanyCodes[id]
	return v, ok
}

func (t *Tables) Processing(id int64) (Processing, bool) {
	if t == nil || id == 0 {
		return Processing{}, false
	}
	v, ok := t.Processings[id]
	return v, ok
}

func (t *Tables) Factory(id int64) (Factory, bool) {
	if t == nil || id == 0 {
		return Factory{}, false
	}
	v, ok := t.Factories[id]
	return v, ok
}

func (t *Tables) Tax(id int64) (Tax, bool) {
	if t == nil || id == 0 {
		return Tax{}, false
	}
	v, ok := t.Taxes[id]
	return v, ok
}
