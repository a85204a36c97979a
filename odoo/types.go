package odoo

import "encoding/json"

// Record is one row as returned by the ERP: a field map whose values
// follow Odoo's wire conventions (false for unset, [id, name] pairs for
// many2one references). The accessors below normalize those shapes.
type Record map[string]any

func (r Record) ID() int {
	id, _ := toInt(r["id"])
	return id
}

// Str returns the field as a string. Odoo sends false for unset text
// fields, which maps to "".
func (r Record) Str(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

func (r Record) Int(field string) int {
	n, _ := toInt(r[field])
	return n
}

func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// Ref returns a many2one field, which Odoo encodes as [id, "display
// name"] when set and false when not.
func (r Record) Ref(field string) Ref {
	pair, ok := r[field].([]any)
	if !ok || len(pair) != 2 {
		return Ref{}
	}
	id, ok := toInt(pair[0])
	if !ok {
		return Ref{}
	}
	name, _ := pair[1].(string)
	return Ref{ID: id, Name: name, Set: true}
}

// Ref is a many2one reference. It marshals back to Odoo's [id, name]
// pair, or false when unset, so responses stay shape-compatible with
// what the ERP itself returns.
type Ref struct {
	ID   int
	Name string
	Set  bool
}

func (ref Ref) MarshalJSON() ([]byte, error) {
	if !ref.Set {
		return []byte("false"), nil
	}
	return json.Marshal([]any{ref.ID, ref.Name})
}

// Product is a product.template row.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	DefaultCode  string  `json:"default_code"`
	ListPrice    float64 `json:"list_price"`
	QtyAvailable float64 `json:"qty_available"`
}

// ProductFields is the field list handlers request for product reads.
var ProductFields = []string{"id", "name", "default_code", "list_price", "qty_available"}

func ProductFromRecord(r Record) Product {
	return Product{
		ID:           r.ID(),
		Name:         r.Str("name"),
		DefaultCode:  r.Str("default_code"),
		ListPrice:    r.Float("list_price"),
		QtyAvailable: r.Float("qty_available"),
	}
}

// Lead is a crm.lead row.
type Lead struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Type        string `json:"type"`
	Stage       Ref    `json:"stage_id"`
	User        Ref    `json:"user_id"`
	Description string `json:"description"`
	CreateDate  string `json:"create_date"`
}

// LeadFields is the field list handlers request for lead reads.
var LeadFields = []string{"id", "name", "phone", "email", "type", "stage_id", "user_id", "description", "create_date"}

func LeadFromRecord(r Record) Lead {
	return Lead{
		ID:          r.ID(),
		Name:        r.Str("name"),
		Phone:       r.Str("phone"),
		Email:       r.Str("email"),
		Type:        r.Str("type"),
		Stage:       r.Ref("stage_id"),
		User:        r.Ref("user_id"),
		Description: r.Str("description"),
		CreateDate:  r.Str("create_date"),
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
