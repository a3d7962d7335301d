package query_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuild_EmptyFilterReturnsBaseQuery(t *testing.T) {
	b := query.NewBuilder("")

	q := b.Build(domain.FilterModel{})

	assert.Equal(t, b.BaseQuery(), q.Text)
	assert.Empty(t, q.Params)
	assert.Empty(t, q.Clauses)
	assert.Contains(t, q.Text, "FROM delivery_full_view\nWHERE 1=1")
	assert.True(t, strings.HasSuffix(q.Text, "ORDER BY delivery_id DESC, sto_dr_line_id DESC"))
}

func TestSplitProductValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"code and name", "PT001 - Widget A", "PT001"},
		{"bare code", "PT002", "PT002"},
		{"name containing separator after code", "PT003 - Widget - Large", "PT003"},
		{"surrounding whitespace", "  PT004 - Bolt  ", "PT004"},
		{"separator before the intended one", "Widget - PT005 - Bolt", "Widget"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.SplitProductValue(tt.value))
		})
	}
}

func TestBuild_ProductFilterBindsBareCode(t *testing.T) {
	b := query.NewBuilder("")

	q := b.Build(domain.FilterModel{
		Products: domain.ListFilter{Values: []string{"PT001 - Widget A"}},
	})

	assert.Equal(t, []string{"PT001"}, q.Params["products"])
	assert.Contains(t, q.Clauses, "pt_code IN (:products)")
}

func TestBuild_ListClauses(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.FilterModel
		clause string
		param  string
		values []string
	}{
		{
			name:   "creators include",
			filter: domain.FilterModel{Creators: domain.ListFilter{Values: []string{"Lan", "An"}}},
			clause: "created_by_name IN (:creators)",
			param:  "creators",
			values: []string{"An", "Lan"},
		},
		{
			name:   "customers exclude",
			filter: domain.FilterModel{Customers: domain.ListFilter{Values: []string{"ACME"}, Exclude: true}},
			clause: "customer NOT IN (:customers)",
			param:  "customers",
			values: []string{"ACME"},
		},
		{
			name:   "ship to",
			filter: domain.FilterModel{ShipTo: domain.ListFilter{Values: []string{"Plant 2"}}},
			clause: "recipient_company IN (:ship_to)",
			param:  "ship_to",
			values: []string{"Plant 2"},
		},
		{
			name:   "states",
			filter: domain.FilterModel{States: domain.ListFilter{Values: []string{"Binh Duong"}}},
			clause: "recipient_state_province IN (:states)",
			param:  "states",
			values: []string{"Binh Duong"},
		},
		{
			name:   "countries",
			filter: domain.FilterModel{Countries: domain.ListFilter{Values: []string{"Vietnam"}}},
			clause: "recipient_country_name IN (:countries)",
			param:  "countries",
			values: []string{"Vietnam"},
		},
		{
			name:   "timeline exclude",
			filter: domain.FilterModel{Timeline: domain.ListFilter{Values: []string{"Completed"}, Exclude: true}},
			clause: "delivery_timeline_status NOT IN (:timeline)",
			param:  "timeline",
			values: []string{"Completed"},
		},
		{
			name:   "legal entities",
			filter: domain.FilterModel{LegalEntities: domain.ListFilter{Values: []string{"PTV", "PTV", "PTS"}}},
			clause: "legal_entity IN (:legal_entities)",
			param:  "legal_entities",
			values: []string{"PTS", "PTV"},
		},
		{
			name:   "brands",
			filter: domain.FilterModel{Brands: domain.ListFilter{Values: []string{"3M"}}},
			clause: "brand IN (:brands)",
			param:  "brands",
			values: []string{"3M"},
		},
		{
			name:   "shipment statuses",
			filter: domain.FilterModel{Statuses: domain.ListFilter{Values: []string{"PENDING"}}},
			clause: "shipment_status IN (:statuses)",
			param:  "statuses",
			values: []string{"PENDING"},
		},
	}

	b := query.NewBuilder("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := b.Build(tt.filter)
			assert.Equal(t, []string{tt.clause}, q.Clauses)
			assert.Equal(t, tt.values, q.Params[tt.param])
			assert.Contains(t, q.Text, "\n  AND "+tt.clause+"\n")
		})
	}
}

func TestBuild_MalformedListAddsNoClause(t *testing.T) {
	b := query.NewBuilder("")

	q := b.Build(domain.FilterModel{
		Creators: domain.ListFilter{Values: []string{"", "   "}},
		Products: domain.ListFilter{Values: []string{" - "}, Exclude: true},
	})

	assert.Empty(t, q.Clauses)
	assert.Equal(t, b.BaseQuery(), q.Text)
}

func TestBuild_DateRange(t *testing.T) {
	b := query.NewBuilder("")

	t.Run("ordered range", func(t *testing.T) {
		q := b.Build(domain.FilterModel{DateFrom: date("2024-01-01"), DateTo: date("2024-01-31")})
		assert.Equal(t, []string{"etd >= :date_from", "etd <= :date_to"}, q.Clauses)
		assert.Equal(t, "2024-01-01", q.Params["date_from"])
		assert.Equal(t, "2024-01-31", q.Params["date_to"])
	})

	t.Run("inverted range collapses to start date", func(t *testing.T) {
		q := b.Build(domain.FilterModel{DateFrom: date("2024-01-10"), DateTo: date("2024-01-05")})
		assert.Equal(t, "2024-01-10", q.Params["date_from"])
		assert.Equal(t, "2024-01-10", q.Params["date_to"])
	})

	t.Run("open ended", func(t *testing.T) {
		q := b.Build(domain.FilterModel{DateTo: date("2024-02-01")})
		assert.Equal(t, []string{"etd <= :date_to"}, q.Clauses)
	})
}

func TestBuild_EnumClauses(t *testing.T) {
	b := query.NewBuilder("")

	tests := []struct {
		name   string
		filter domain.FilterModel
		want   []string
	}{
		{"epe only", domain.FilterModel{EPE: domain.EPEOnly}, []string{"is_epe_company = 'Yes'"}},
		{"non epe", domain.FilterModel{EPE: domain.EPEExclude}, []string{"is_epe_company = 'No'"}},
		{"epe label", domain.FilterModel{EPE: "EPE Companies Only"}, []string{"is_epe_company = 'Yes'"}},
		{"foreign only", domain.FilterModel{Foreign: domain.ForeignOnly}, []string{"customer_country_code != legal_entity_country_code"}},
		{"domestic label", domain.FilterModel{Foreign: "Domestic Only"}, []string{"customer_country_code = legal_entity_country_code"}},
		{"all", domain.FilterModel{EPE: domain.EPEAll, Foreign: domain.ForeignAll}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Build(tt.filter).Clauses)
		})
	}
}

func TestQueryBind(t *testing.T) {
	b := query.NewBuilder("")
	q := b.Build(domain.FilterModel{
		DateFrom:  date("2024-01-01"),
		Creators:  domain.ListFilter{Values: []string{"An", "Lan"}},
		Customers: domain.ListFilter{Values: []string{"ACME"}, Exclude: true},
	})

	t.Run("mysql", func(t *testing.T) {
		text, args, err := q.Bind("mysql")
		require.NoError(t, err)
		assert.NotContains(t, text, ":creators")
		assert.Equal(t, len(args), strings.Count(text, "?"))
		assert.Equal(t, []interface{}{"2024-01-01", "An", "Lan", "ACME"}, args)
	})

	t.Run("sqlserver", func(t *testing.T) {
		text, args, err := q.Bind("sqlserver")
		require.NoError(t, err)
		assert.Len(t, args, 4)
		assert.Contains(t, text, "@p1")
		assert.Contains(t, text, "@p4")
		assert.NotContains(t, text, "?")
	})
}

func TestBuild_FilterMonotonicityOnClauses(t *testing.T) {
	b := query.NewBuilder("")
	base := domain.FilterModel{DateFrom: date("2024-01-01"), Customers: domain.ListFilter{Values: []string{"ACME"}}}

	narrower := base
	narrower.EPE = domain.EPEOnly
	narrower.Products = domain.ListFilter{Values: []string{"PT001 - Widget"}}

	broad := b.Build(base)
	narrow := b.Build(narrower)

	for _, c := range broad.Clauses {
		assert.Contains(t, narrow.Clauses, c)
	}
	assert.Greater(t, len(narrow.Clauses), len(broad.Clauses))
}

func TestFilterOptionQuery(t *testing.T) {
	b := query.NewBuilder("delivery_full_view")

	q, err := b.FilterOptionQuery(domain.DimensionProducts)
	require.NoError(t, err)
	assert.Contains(t, q, "CONCAT(pt_code, ' - ', product_pn) AS option_value")

	q, err = b.FilterOptionQuery(domain.DimensionShipTo)
	require.NoError(t, err)
	assert.Contains(t, q, "SELECT DISTINCT recipient_company AS option_value")

	_, err = b.FilterOptionQuery("warehouse")
	assert.Error(t, err)
}

func TestRecipientQueriesBind(t *testing.T) {
	b := query.NewBuilder("")
	today := *date("2024-03-04")
	until := today.AddDate(0, 0, 28)

	schedule := b.SalesRecipientsQuery(domain.NotificationDeliverySchedule, "employees", today, until)
	text, args, err := schedule.Bind("mysql")
	require.NoError(t, err)
	assert.Contains(t, text, "d.etd >= ?")
	assert.Contains(t, args, "2024-04-01")

	overdue := b.SalesRecipientsQuery(domain.NotificationOverdueAlert, "", today, until)
	text, args, err = overdue.Bind("mysql")
	require.NoError(t, err)
	assert.Contains(t, text, "d.delivery_timeline_status IN (")
	assert.Contains(t, args, "Overdue")
	assert.Contains(t, args, "Due Today")
	assert.NotContains(t, args, "2024-03-04")

	customers := b.CustomerRecipientsQuery(today, until)
	_, args, err = customers.Bind("sqlserver")
	require.NoError(t, err)
	assert.Contains(t, args, "DELIVERED")
}
