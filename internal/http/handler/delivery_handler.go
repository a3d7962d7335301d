package handler

import (
	"net/http"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/pivot"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/prostech/outbound-api/internal/service"
	"go.uber.org/zap"
)

// DeliveryHandler serves the delivery reports, product analysis and exports
type DeliveryHandler struct {
	deliveries *service.DeliveryService
	logger     *zap.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler instance
func NewDeliveryHandler(deliveries *service.DeliveryService, logger *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		deliveries: deliveries,
		logger:     logger,
	}
}

// filter parses the request filter, answering 400 itself on failure
func (h *DeliveryHandler) filter(w http.ResponseWriter, r *http.Request) (domain.FilterModel, bool) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		respondError(w, h.logger, "parse filter", err)
		return f, false
	}
	return f, true
}

func wideOptions(r *http.Request) pivot.WideOptions {
	q := r.URL.Query()
	return pivot.WideOptions{
		Period:  domain.Period(q.Get("period")),
		GroupBy: pivot.GroupBy(q.Get("group_by")),
		Measure: pivot.Measure(q.Get("measure")),
	}
}

func periodOrDefault(p domain.Period) domain.Period {
	if p == "" {
		return domain.PeriodWeekly
	}
	return p
}

// List godoc
// @Summary List delivery lines
// @Description Returns the line-level rows matching the filter. No matching rows is a 200 with an empty table and a message.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Deliveries
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Success 200 {object} domain.DeliveriesResponse
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries [get]
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	resp, err := h.deliveries.Deliveries(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, "list deliveries", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Metrics godoc
// @Summary Delivery KPIs
// @Description Returns the KPI tiles for the filter.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Deliveries
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Success 200 {object} analysis.Metrics
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/metrics [get]
func (h *DeliveryHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	m, err := h.deliveries.Metrics(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, "compute metrics", err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// Pivot godoc
// @Summary Period pivot
// @Description Groups lines by period bucket, customer and ship-to.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Deliveries
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Param period query string false "Bucket size" Enums(daily, weekly, monthly) default(weekly)
// @Success 200 {object} pivot.Table
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/pivot [get]
func (h *DeliveryHandler) Pivot(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	t, err := h.deliveries.Pivot(r.Context(), f, domain.Period(r.URL.Query().Get("period")))
	if err != nil {
		respondError(w, h.logger, "build pivot", err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// Wide godoc
// @Summary Wide period pivot
// @Description Returns a group by period matrix of the selected measure.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Deliveries
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Param period query string false "Bucket size" Enums(daily, weekly, monthly) default(weekly)
// @Param group_by query string false "Row grouping" Enums(customer_product, customer, product) default(customer_product)
// @Param measure query string false "Cell measure" Enums(standard_quantity, remaining_quantity) default(standard_quantity)
// @Success 200 {object} pivot.WideTable
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/pivot/wide [get]
func (h *DeliveryHandler) Wide(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	t, err := h.deliveries.Wide(r.Context(), f, wideOptions(r))
	if err != nil {
		respondError(w, h.logger, "build wide pivot", err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// PivotExport godoc
// @Summary Export period pivot
// @Description Downloads the period pivot as CSV.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Exports
// @Produce text/csv
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Param period query string false "Bucket size" Enums(daily, weekly, monthly) default(weekly)
// @Success 200 {file} file "pivot_<period>_<YYYYMMDD>.csv"
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/pivot/export [get]
func (h *DeliveryHandler) PivotExport(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	period := periodOrDefault(domain.Period(r.URL.Query().Get("period")))
	data, err := h.deliveries.PivotCSV(r.Context(), f, period)
	if err != nil {
		respondError(w, h.logger, "export pivot", err)
		return
	}
	respondFile(w, render.CSVMediaType, render.ExportFilename("pivot", string(period), h.deliveries.Today()), data)
}

// WideExport godoc
// @Summary Export wide pivot
// @Description Downloads the wide pivot as CSV.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Exports
// @Produce text/csv
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Param period query string false "Bucket size" Enums(daily, weekly, monthly) default(weekly)
// @Param group_by query string false "Row grouping" Enums(customer_product, customer, product) default(customer_product)
// @Param measure query string false "Cell measure" Enums(standard_quantity, remaining_quantity) default(standard_quantity)
// @Success 200 {file} file "wide_pivot_<period>_<YYYYMMDD>.csv"
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/pivot/wide/export [get]
func (h *DeliveryHandler) WideExport(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	opts := wideOptions(r)
	data, err := h.deliveries.WideCSV(r.Context(), f, opts)
	if err != nil {
		respondError(w, h.logger, "export wide pivot", err)
		return
	}
	period := periodOrDefault(opts.Period)
	respondFile(w, render.CSVMediaType, render.ExportFilename("wide_pivot", string(period), h.deliveries.Today()), data)
}

// Workbook godoc
// @Summary Export workbook
// @Description Downloads the filtered lines as an XLSX workbook with detail, summary and product sheets.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Success 200 {file} file "deliveries_export_<YYYYMMDD>.xlsx"
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/export.xlsx [get]
func (h *DeliveryHandler) Workbook(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	data, err := h.deliveries.Workbook(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, "export workbook", err)
		return
	}
	respondFile(w, render.XLSXMediaType, render.AttachmentFilename("deliveries", "export", h.deliveries.Today(), "xlsx"), data)
}

// Overdue godoc
// @Summary Overdue summary
// @Description Summarizes overdue lines per customer and ship-to.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Deliveries
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Success 200 {object} analysis.OverdueSummary
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/deliveries/overdue [get]
func (h *DeliveryHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	o, err := h.deliveries.Overdue(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, "summarize overdue deliveries", err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// ProductAnalysis godoc
// @Summary Product gap analysis
// @Description Returns one entry per product with demand, inventory, gap and fulfillment status. Missing product-level columns are reported as notices.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Products
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Success 200 {object} analysis.ProductAnalysis
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/products/analysis [get]
func (h *DeliveryHandler) ProductAnalysis(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	a, err := h.deliveries.Products(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, "analyze products", err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// TopProducts godoc
// @Summary Top shortage products
// @Description Ranks products by the selected measure, descending.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Products
// @Produce json
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Param n query int false "Number of products (5-50)" default(15)
// @Param sort query string false "Ranking measure" Enums(gap_quantity, gap_percentage, total_remaining_demand) default(gap_quantity)
// @Success 200 {object} analysis.ProductAnalysis
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/products/top [get]
func (h *DeliveryHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	n, err := intParam(q, "n", analysis.DefaultTopN)
	if err != nil {
		respondError(w, h.logger, "rank products", err)
		return
	}
	top, err := h.deliveries.TopProducts(r.Context(), f, n, analysis.SortKey(q.Get("sort")))
	if err != nil {
		respondError(w, h.logger, "rank products", err)
		return
	}
	respondJSON(w, http.StatusOK, top)
}

// ProductsExport godoc
// @Summary Export product analysis
// @Description Downloads the product analysis as CSV.
// @Description List filters accept exclude_<dimension>=true to exclude the listed values instead.
// @Tags Exports
// @Produce text/csv
// @Param date_from query string false "ETD from (YYYY-MM-DD)"
// @Param date_to query string false "ETD to (YYYY-MM-DD)"
// @Param creators query []string false "Sales creators" collectionFormat(multi)
// @Param customers query []string false "Customers" collectionFormat(multi)
// @Param ship_to query []string false "Ship-to companies" collectionFormat(multi)
// @Param products query []string false "Products as \"<pt_code> - <name>\"" collectionFormat(multi)
// @Param brands query []string false "Brands" collectionFormat(multi)
// @Param states query []string false "Ship-to states or provinces" collectionFormat(multi)
// @Param countries query []string false "Ship-to countries" collectionFormat(multi)
// @Param legal_entities query []string false "Legal entities" collectionFormat(multi)
// @Param timeline query []string false "Timeline statuses" collectionFormat(multi) Enums(Overdue, Due Today, On Schedule, Completed, No ETD)
// @Param statuses query []string false "Shipment statuses" collectionFormat(multi)
// @Param epe query string false "EPE company filter" Enums(all, epe_only, non_epe_only)
// @Param foreign query string false "Customer versus legal entity country" Enums(all, foreign_only, domestic_only)
// @Success 200 {file} file "products_all_<YYYYMMDD>.csv"
// @Failure 400 {object} domain.APIError "Invalid filter"
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Failure 500 {object} domain.APIError
// @Router /api/v1/products/export [get]
func (h *DeliveryHandler) ProductsExport(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	data, err := h.deliveries.ProductsCSV(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, "export products", err)
		return
	}
	respondFile(w, render.CSVMediaType, render.ExportFilename("products", "all", h.deliveries.Today()), data)
}

// FilterOptions godoc
// @Summary Filter options
// @Description Lists the selectable values of every filter dimension and the ETD range.
// @Tags Filters
// @Produce json
// @Success 200 {object} domain.FilterOptionsDTO
// @Failure 502 {object} domain.APIError "Delivery view query failed"
// @Router /api/v1/filter-options [get]
func (h *DeliveryHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.deliveries.FilterOptions(r.Context())
	if err != nil {
		respondError(w, h.logger, "load filter options", err)
		return
	}
	respondJSON(w, http.StatusOK, opts)
}

// InvalidateCache godoc
// @Summary Invalidate row-set cache
// @Description Drops every cached row-set so the next request queries the view.
// @Tags Filters
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} domain.APIError
// @Router /api/v1/cache/invalidate [post]
func (h *DeliveryHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if err := h.deliveries.InvalidateCache(r.Context()); err != nil {
		respondError(w, h.logger, "invalidate cache", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}
