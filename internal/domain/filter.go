package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EPEFilter restricts rows by the customer's EPE classification.
type EPEFilter string

const (
	EPEAll     EPEFilter = "all"
	EPEOnly    EPEFilter = "epe_only"
	EPEExclude EPEFilter = "non_epe_only"
)

// ForeignFilter restricts rows by customer country versus legal entity country.
type ForeignFilter string

const (
	ForeignAll      ForeignFilter = "all"
	ForeignOnly     ForeignFilter = "foreign_only"
	ForeignDomestic ForeignFilter = "domestic_only"
)

// epeLabels maps dashboard labels onto enum values.
var epeLabels = map[string]EPEFilter{
	"all customers":          EPEAll,
	"all":                    EPEAll,
	"epe companies only":     EPEOnly,
	"non-epe companies only": EPEExclude,
}

var foreignLabels = map[string]ForeignFilter{
	"all customers": ForeignAll,
	"all":           ForeignAll,
	"foreign only":  ForeignOnly,
	"domestic only": ForeignDomestic,
}

// ParseEPEFilter accepts both the enum value and the dashboard label.
// Unknown input is returned unchanged so that validation can reject it.
func ParseEPEFilter(s string) EPEFilter {
	s = strings.TrimSpace(s)
	if s == "" {
		return EPEAll
	}
	if v, ok := epeLabels[strings.ToLower(s)]; ok {
		return v
	}
	return EPEFilter(s)
}

// ParseForeignFilter accepts both the enum value and the dashboard label.
func ParseForeignFilter(s string) ForeignFilter {
	s = strings.TrimSpace(s)
	if s == "" {
		return ForeignAll
	}
	if v, ok := foreignLabels[strings.ToLower(s)]; ok {
		return v
	}
	return ForeignFilter(s)
}

// Dimension names a list-valued filter predicate.
type Dimension string

const (
	DimensionCreators      Dimension = "creators"
	DimensionCustomers     Dimension = "customers"
	DimensionShipTo        Dimension = "ship_to"
	DimensionProducts      Dimension = "products"
	DimensionBrands        Dimension = "brands"
	DimensionStates        Dimension = "states"
	DimensionCountries     Dimension = "countries"
	DimensionLegalEntities Dimension = "legal_entities"
	DimensionTimeline      Dimension = "timeline"
	DimensionStatuses      Dimension = "statuses"
)

// Dimensions lists every list-valued dimension in clause order.
var Dimensions = []Dimension{
	DimensionCreators,
	DimensionCustomers,
	DimensionShipTo,
	DimensionProducts,
	DimensionBrands,
	DimensionStates,
	DimensionCountries,
	DimensionLegalEntities,
	DimensionTimeline,
	DimensionStatuses,
}

// ListFilter is a set of accepted (or, with Exclude, rejected) values.
type ListFilter struct {
	Values  []string `json:"values,omitempty"`
	Exclude bool     `json:"exclude,omitempty"`
}

// Clean returns the non-blank values, trimmed, sorted and de-duplicated.
func (lf ListFilter) Clean() []string {
	seen := make(map[string]struct{}, len(lf.Values))
	out := make([]string, 0, len(lf.Values))
	for _, v := range lf.Values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Active reports whether the filter restricts anything.
func (lf ListFilter) Active() bool {
	return len(lf.Clean()) > 0
}

// FilterModel describes the optional predicates of a delivery report request.
// The zero value matches every row.
type FilterModel struct {
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	Creators      ListFilter `json:"creators"`
	Customers     ListFilter `json:"customers"`
	ShipTo        ListFilter `json:"ship_to"`
	Products      ListFilter `json:"products"`
	Brands        ListFilter `json:"brands"`
	States        ListFilter `json:"states"`
	Countries     ListFilter `json:"countries"`
	LegalEntities ListFilter `json:"legal_entities"`
	Timeline      ListFilter `json:"timeline"`
	Statuses      ListFilter `json:"statuses"`

	EPE     EPEFilter     `json:"epe,omitempty" validate:"omitempty,oneof=all epe_only non_epe_only"`
	Foreign ForeignFilter `json:"foreign,omitempty" validate:"omitempty,oneof=all foreign_only domestic_only"`
}

// List returns the list filter for a dimension.
func (f *FilterModel) List(d Dimension) ListFilter {
	switch d {
	case DimensionCreators:
		return f.Creators
	case DimensionCustomers:
		return f.Customers
	case DimensionShipTo:
		return f.ShipTo
	case DimensionProducts:
		return f.Products
	case DimensionBrands:
		return f.Brands
	case DimensionStates:
		return f.States
	case DimensionCountries:
		return f.Countries
	case DimensionLegalEntities:
		return f.LegalEntities
	case DimensionTimeline:
		return f.Timeline
	case DimensionStatuses:
		return f.Statuses
	}
	return ListFilter{}
}

// SetList replaces the list filter for a dimension.
func (f *FilterModel) SetList(d Dimension, lf ListFilter) {
	switch d {
	case DimensionCreators:
		f.Creators = lf
	case DimensionCustomers:
		f.Customers = lf
	case DimensionShipTo:
		f.ShipTo = lf
	case DimensionProducts:
		f.Products = lf
	case DimensionBrands:
		f.Brands = lf
	case DimensionStates:
		f.States = lf
	case DimensionCountries:
		f.Countries = lf
	case DimensionLegalEntities:
		f.LegalEntities = lf
	case DimensionTimeline:
		f.Timeline = lf
	case DimensionStatuses:
		f.Statuses = lf
	}
}

// Normalize returns a cleaned copy of the filter. Dashboard labels are mapped
// to enum values, dates are truncated to calendar days and an inverted range
// collapses to its start date. Unknown enum values yield a FilterValidationError.
func (f FilterModel) Normalize() (FilterModel, error) {
	out := f
	out.EPE = ParseEPEFilter(string(f.EPE))
	out.Foreign = ParseForeignFilter(string(f.Foreign))

	if f.DateFrom != nil {
		d := DateOf(*f.DateFrom)
		out.DateFrom = &d
	}
	if f.DateTo != nil {
		d := DateOf(*f.DateTo)
		out.DateTo = &d
	}
	if out.DateFrom != nil && out.DateTo != nil && out.DateTo.Before(*out.DateFrom) {
		d := *out.DateFrom
		out.DateTo = &d
	}

	if err := validate.Struct(out); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return f, &FilterValidationError{
				Field:  strings.ToLower(fe.Field()),
				Value:  fe.Value(),
				Reason: "must be one of: " + fe.Param(),
			}
		}
		return f, &FilterValidationError{Reason: err.Error()}
	}

	return out, nil
}

// canonicalFilter is the order-independent form used for cache keys.
type canonicalFilter struct {
	DateFrom string                `json:"from,omitempty"`
	DateTo   string                `json:"to,omitempty"`
	Lists    map[string]ListFilter `json:"lists,omitempty"`
	EPE      EPEFilter             `json:"epe"`
	Foreign  ForeignFilter         `json:"foreign"`
}

// Signature returns a stable key for the filter. Two filters that restrict
// the same rows (same values in any order, same flags) share a signature.
func (f FilterModel) Signature() string {
	c := canonicalFilter{
		EPE:     ParseEPEFilter(string(f.EPE)),
		Foreign: ParseForeignFilter(string(f.Foreign)),
		Lists:   make(map[string]ListFilter),
	}
	if f.DateFrom != nil {
		c.DateFrom = f.DateFrom.Format("2006-01-02")
	}
	if f.DateTo != nil {
		c.DateTo = f.DateTo.Format("2006-01-02")
	}
	for _, d := range Dimensions {
		lf := f.List(d)
		if vals := lf.Clean(); len(vals) > 0 {
			c.Lists[string(d)] = ListFilter{Values: vals, Exclude: lf.Exclude}
		}
	}

	// map keys are sorted by encoding/json
	b, _ := json.Marshal(c)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
