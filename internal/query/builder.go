// Package query turns a FilterModel into a parameterized query against the
// delivery view. Values are only ever bound, never interpolated.
package query

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/prostech/outbound-api/internal/domain"
)

// DefaultView is the relation delivery lines are read from
const DefaultView = "delivery_full_view"

// productSeparator splits "<pt_code> - <product name>" option values
const productSeparator = " - "

// baseColumns is the projection of every delivery line query, a superset of
// the DeliveryLine fields.
var baseColumns = []string{
	"delivery_id",
	"dn_number",
	"sto_dr_line_id",
	"oc_id",
	"oc_number",
	"oc_line_id",
	"oc_date",
	"customer_po_number",
	"product_id",
	"pt_code",
	"product_pn",
	"brand",
	"package_size",
	"standard_uom",
	"standard_quantity",
	"remaining_quantity_to_deliver",
	"gap_quantity",
	"product_gap_quantity",
	"product_total_remaining_demand",
	"product_fulfill_rate_percent",
	"total_instock_at_preferred_warehouse",
	"total_instock_all_warehouses",
	"etd",
	"created_date",
	"dispatched_date",
	"delivered_date",
	"days_overdue",
	"delivery_timeline_status",
	"shipment_status",
	"shipment_status_vn",
	"fulfillment_status",
	"product_fulfillment_status",
	"is_delivered",
	"customer",
	"customer_code",
	"customer_contact",
	"customer_contact_email",
	"customer_address",
	"customer_country_code",
	"customer_country_name",
	"customer_state_province",
	"recipient_company",
	"recipient_company_code",
	"recipient_contact",
	"recipient_contact_email",
	"recipient_address",
	"recipient_country_code",
	"recipient_country_name",
	"recipient_state_province",
	"legal_entity",
	"legal_entity_code",
	"legal_entity_country_code",
	"created_by_name",
	"created_by_email",
	"preferred_warehouse",
	"is_epe_company",
	"shipping_cost",
	"intl_charge",
	"local_charge",
}

// BaseColumns returns a copy of the projected column list
func BaseColumns() []string {
	out := make([]string, len(baseColumns))
	copy(out, baseColumns)
	return out
}

// listClause binds one list-valued dimension to its view column.
type listClause struct {
	dimension domain.Dimension
	column    string
	param     string
	// value maps a filter value onto the bound parameter
	value func(string) string
	// field reads the matching value from a delivery line
	field func(*domain.DeliveryLine) string
}

var listClauses = []listClause{
	{domain.DimensionCreators, "created_by_name", "creators", nil,
		func(l *domain.DeliveryLine) string { return l.CreatedByName }},
	{domain.DimensionCustomers, "customer", "customers", nil,
		func(l *domain.DeliveryLine) string { return l.Customer }},
	{domain.DimensionShipTo, "recipient_company", "ship_to", nil,
		func(l *domain.DeliveryLine) string { return l.RecipientCompany }},
	{domain.DimensionProducts, "pt_code", "products", SplitProductValue,
		func(l *domain.DeliveryLine) string { return l.PTCode }},
	{domain.DimensionBrands, "brand", "brands", nil,
		func(l *domain.DeliveryLine) string { return l.Brand }},
	{domain.DimensionStates, "recipient_state_province", "states", nil,
		func(l *domain.DeliveryLine) string { return l.RecipientStateProvince }},
	{domain.DimensionCountries, "recipient_country_name", "countries", nil,
		func(l *domain.DeliveryLine) string { return l.RecipientCountryName }},
	{domain.DimensionLegalEntities, "legal_entity", "legal_entities", nil,
		func(l *domain.DeliveryLine) string { return l.LegalEntity }},
	{domain.DimensionTimeline, "delivery_timeline_status", "timeline", nil,
		func(l *domain.DeliveryLine) string { return string(l.TimelineStatus) }},
	{domain.DimensionStatuses, "shipment_status", "statuses", nil,
		func(l *domain.DeliveryLine) string { return l.ShipmentStatus }},
}

var epeClauses = map[domain.EPEFilter]string{
	domain.EPEOnly:    "is_epe_company = 'Yes'",
	domain.EPEExclude: "is_epe_company = 'No'",
}

var foreignClauses = map[domain.ForeignFilter]string{
	domain.ForeignOnly:     "customer_country_code != legal_entity_country_code",
	domain.ForeignDomestic: "customer_country_code = legal_entity_country_code",
}

// ColumnFor returns the view column filtered by a dimension
func ColumnFor(d domain.Dimension) (string, bool) {
	for _, c := range listClauses {
		if c.dimension == d {
			return c.column, true
		}
	}
	return "", false
}

// SplitProductValue recovers the bare product code from a "<code> - <name>"
// option value by splitting on the first separator. A name that itself
// contains " - " before the intended separator yields a wrong code.
func SplitProductValue(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.Index(v, productSeparator); i >= 0 {
		return strings.TrimSpace(v[:i])
	}
	return v
}

// Query is a query text with named (":name") parameters.
type Query struct {
	Text    string
	Params  map[string]interface{}
	Clauses []string
}

// Bind converts the named parameters into positional arguments for the
// driver, expanding IN lists.
func (q Query) Bind(driverName string) (string, []interface{}, error) {
	named, args, err := sqlx.Named(q.Text, q.Params)
	if err != nil {
		return "", nil, fmt.Errorf("failed to bind named parameters: %w", err)
	}
	expanded, args, err := sqlx.In(named, args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand IN parameters: %w", err)
	}
	return sqlx.Rebind(sqlx.BindType(driverName), expanded), args, nil
}

// Builder assembles delivery line queries against one view.
type Builder struct {
	view string
}

// NewBuilder creates a builder for the given view name
func NewBuilder(view string) *Builder {
	if view == "" {
		view = DefaultView
	}
	return &Builder{view: view}
}

// View returns the relation name the builder queries
func (b *Builder) View() string {
	return b.view
}

// BaseQuery is the unfiltered delivery line query
func (b *Builder) BaseQuery() string {
	return b.selectClause() + "\n" + orderBy
}

const orderBy = "ORDER BY delivery_id DESC, sto_dr_line_id DESC"

func (b *Builder) selectClause() string {
	return "SELECT\n    " + strings.Join(baseColumns, ",\n    ") + "\nFROM " + b.view + "\nWHERE 1=1"
}

// Build translates the filter into a query. It never fails: blank list values
// are dropped, lists left empty add no clause and an inverted date range is
// read as a single day.
func (b *Builder) Build(f domain.FilterModel) Query {
	params := make(map[string]interface{})
	clauses := predicateClauses(f, params)

	var sb strings.Builder
	sb.WriteString(b.selectClause())
	for _, c := range clauses {
		sb.WriteString("\n  AND ")
		sb.WriteString(c)
	}
	sb.WriteString("\n")
	sb.WriteString(orderBy)

	return Query{Text: sb.String(), Params: params, Clauses: clauses}
}

func predicateClauses(f domain.FilterModel, params map[string]interface{}) []string {
	var clauses []string

	from, to := dateBounds(f)
	if from != "" {
		clauses = append(clauses, "etd >= :date_from")
		params["date_from"] = from
	}
	if to != "" {
		clauses = append(clauses, "etd <= :date_to")
		params["date_to"] = to
	}

	for _, lc := range listClauses {
		lf := f.List(lc.dimension)
		values := boundValues(lc, lf)
		if len(values) == 0 {
			continue
		}
		op := "IN"
		if lf.Exclude {
			op = "NOT IN"
		}
		clauses = append(clauses, fmt.Sprintf("%s %s (:%s)", lc.column, op, lc.param))
		params[lc.param] = values
	}

	if c, ok := epeClauses[domain.ParseEPEFilter(string(f.EPE))]; ok {
		clauses = append(clauses, c)
	}
	if c, ok := foreignClauses[domain.ParseForeignFilter(string(f.Foreign))]; ok {
		clauses = append(clauses, c)
	}

	return clauses
}

func dateBounds(f domain.FilterModel) (string, string) {
	var from, to string
	if f.DateFrom != nil {
		from = f.DateFrom.Format("2006-01-02")
	}
	if f.DateTo != nil {
		to = f.DateTo.Format("2006-01-02")
		if f.DateFrom != nil && f.DateTo.Before(*f.DateFrom) {
			to = from
		}
	}
	return from, to
}

func boundValues(lc listClause, lf domain.ListFilter) []string {
	values := lf.Clean()
	if lc.value == nil || len(values) == 0 {
		return values
	}
	mapped := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		m := lc.value(v)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		mapped = append(mapped, m)
	}
	return mapped
}
