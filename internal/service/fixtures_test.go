package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prostech/outbound-api/internal/cache"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/mail"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/query"
	"github.com/prostech/outbound-api/internal/repository"
	"github.com/prostech/outbound-api/internal/service"
	"go.uber.org/zap"
)

// fixedNow is Monday 2024-03-11
var fixedNow = time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

var deliveryColumns = []string{
	"delivery_id", "sto_dr_line_id", "customer", "recipient_company",
	"product_id", "pt_code", "product_pn", "standard_quantity",
	"remaining_quantity_to_deliver", "etd", "created_by_name", "shipment_status",
	"is_epe_company", "customer_country_code", "customer_country_name",
	"legal_entity_country_code",
}

func deliveryRows() [][]interface{} {
	return [][]interface{}{
		{int64(1), int64(11), "Acme", "Acme Plant 1", int64(101), "PT001", "Widget", 10.0, 10.0, "2024-03-11", "Lan", "Pending", "No", "VN", "Vietnam", "VN"},
		{int64(2), int64(21), "Acme", "Acme Plant 1", int64(102), "PT002", "Gadget", 5.0, 5.0, "2024-03-13", "Lan", "Pending", "No", "VN", "Vietnam", "VN"},
		{int64(3), int64(31), "Beta", "Beta HQ", int64(101), "PT001", "Widget", 7.0, 7.0, "2024-03-08", "Lan", "Pending", "No", "VN", "Vietnam", "VN"},
		{int64(4), int64(41), "Gamma", "Gamma Osaka", int64(103), "PT003", "Bracket", 3.0, 3.0, "2024-03-20", "Minh", "Pending", "No", "JP", "Japan", "VN"},
		{int64(5), int64(51), "Delta", "Delta EPE", int64(104), "PT004", "Bolt", 2.0, 0.0, "2024-03-15", "Minh", "Delivered", "Yes", "VN", "Vietnam", "VN"},
		{int64(6), int64(61), "Epsilon", "Epsilon EPE", int64(105), "PT005", "Nut", 4.0, 4.0, "2024-03-18", "Minh", "Pending", "Yes", "VN", "Vietnam", "VN"},
	}
}

func recipientRows() normalize.RawRows {
	return normalize.RawRows{
		Columns: []string{
			query.RecipientNameColumn, query.RecipientEmailColumn,
			query.RecipientManagerName, query.RecipientManagerEmail,
			query.RecipientActiveColumn, query.RecipientOverdueColumn, query.RecipientDueTodayColumn,
		},
		Values: [][]interface{}{
			{"Lan", "lan@example.com", "Boss", "boss@example.com", int64(3), int64(1), int64(1)},
			{"Minh", "minh@example.com", nil, nil, int64(2), int64(0), int64(0)},
		},
	}
}

// fakeView answers delivery, recipient and filter option queries. Delivery
// queries honor the creator, customer and ETD range parameters.
type fakeView struct {
	mu         sync.Mutex
	rows       [][]interface{}
	recipients normalize.RawRows
	err        error
	calls      int
	queries    []query.Query
}

func newFakeView() *fakeView {
	return &fakeView{rows: deliveryRows(), recipients: recipientRows()}
}

func (f *fakeView) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeView) Query(ctx context.Context, q query.Query) (*normalize.RawRows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, &domain.QueryExecutionError{Op: "query delivery view", Err: f.err}
	}
	if strings.Contains(q.Text, " AS "+query.RecipientEmailColumn) {
		r := f.recipients
		return &r, nil
	}

	out := &normalize.RawRows{Columns: deliveryColumns, Values: [][]interface{}{}}
	for _, row := range f.rows {
		if matchesParams(row, q.Params) {
			out.Values = append(out.Values, row)
		}
	}
	return out, nil
}

func (f *fakeView) QueryText(ctx context.Context, text string, args ...interface{}) (*normalize.RawRows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, &domain.QueryExecutionError{Op: "query delivery view", Err: f.err}
	}
	if strings.Contains(text, "min_etd") {
		return &normalize.RawRows{
			Columns: []string{"min_etd", "max_etd"},
			Values:  [][]interface{}{{"2024-01-02", "2024-12-30"}},
		}, nil
	}
	return &normalize.RawRows{
		Columns: []string{query.OptionColumn},
		Values:  [][]interface{}{{"A"}, {"B"}, {nil}},
	}, nil
}

func column(name string) int {
	for i, c := range deliveryColumns {
		if c == name {
			return i
		}
	}
	return -1
}

func matchesParams(row []interface{}, params map[string]interface{}) bool {
	in := func(param, col string) bool {
		values, ok := params[param].([]string)
		if !ok {
			return true
		}
		for _, v := range values {
			if row[column(col)] == v {
				return true
			}
		}
		return false
	}
	if !in("creators", "created_by_name") || !in("customers", "customer") {
		return false
	}
	etd := row[column("etd")].(string)
	if from, ok := params["date_from"].(string); ok && etd < from {
		return false
	}
	if to, ok := params["date_to"].(string); ok && etd > to {
		return false
	}
	return true
}

func newDeliveryService(view service.Executor, rowCache cache.RowSetCache) *service.DeliveryService {
	n := normalize.New(time.UTC).WithClock(func() time.Time { return fixedNow })
	return service.NewDeliveryService(view, query.NewBuilder(""), n, rowCache, nil, zap.NewNop())
}

// fakeMailer records messages and fails for addresses in failFor.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []*mail.Message
	failFor map[string]bool
}

func (m *fakeMailer) Send(ctx context.Context, msg *mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, to := range msg.To {
		if m.failFor[to] {
			return errors.New("mailbox unavailable")
		}
	}
	m.sent = append(m.sent, msg)
	return nil
}

// memoryLog is an in-memory notification log.
type memoryLog struct {
	entries []domain.NotificationLog
}

func (l *memoryLog) Create(ctx context.Context, entry *domain.NotificationLog) error {
	l.entries = append(l.entries, *entry)
	return nil
}

func (l *memoryLog) List(ctx context.Context, filter repository.NotificationLogFilter, page, pageSize int) ([]domain.NotificationLog, int64, error) {
	var out []domain.NotificationLog
	for _, e := range l.entries {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}
