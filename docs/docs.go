// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/cache/invalidate": {
            "post": {
                "description": "Drops every cached row-set so the next request queries the view.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Filters"
                ],
                "summary": "Invalidate row-set cache",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries": {
            "get": {
                "description": "Returns the line-level rows matching the filter. No matching rows is a 200 with an empty table and a message. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Deliveries"
                ],
                "summary": "List delivery lines",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DeliveriesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/export.xlsx": {
            "get": {
                "description": "Downloads the filtered lines as an XLSX workbook with detail, summary and product sheets. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Exports"
                ],
                "summary": "Export workbook",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "deliveries_export_<YYYYMMDD>.xlsx",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/metrics": {
            "get": {
                "description": "Returns the KPI tiles for the filter. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Deliveries"
                ],
                "summary": "Delivery KPIs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.Metrics"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/overdue": {
            "get": {
                "description": "Summarizes overdue lines per customer and ship-to. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Deliveries"
                ],
                "summary": "Overdue summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.OverdueSummary"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/pivot": {
            "get": {
                "description": "Groups lines by period bucket, customer and ship-to. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Deliveries"
                ],
                "summary": "Period pivot",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "daily",
                            "weekly",
                            "monthly"
                        ],
                        "default": "weekly",
                        "description": "Bucket size",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pivot.Table"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/pivot/export": {
            "get": {
                "description": "Downloads the period pivot as CSV. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Exports"
                ],
                "summary": "Export period pivot",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "daily",
                            "weekly",
                            "monthly"
                        ],
                        "default": "weekly",
                        "description": "Bucket size",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "pivot_<period>_<YYYYMMDD>.csv",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/pivot/wide": {
            "get": {
                "description": "Returns a group by period matrix of the selected measure. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Deliveries"
                ],
                "summary": "Wide period pivot",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "daily",
                            "weekly",
                            "monthly"
                        ],
                        "default": "weekly",
                        "description": "Bucket size",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "customer_product",
                            "customer",
                            "product"
                        ],
                        "default": "customer_product",
                        "description": "Row grouping",
                        "name": "group_by",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "standard_quantity",
                            "remaining_quantity"
                        ],
                        "default": "standard_quantity",
                        "description": "Cell measure",
                        "name": "measure",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pivot.WideTable"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/pivot/wide/export": {
            "get": {
                "description": "Downloads the wide pivot as CSV. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Exports"
                ],
                "summary": "Export wide pivot",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "daily",
                            "weekly",
                            "monthly"
                        ],
                        "default": "weekly",
                        "description": "Bucket size",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "customer_product",
                            "customer",
                            "product"
                        ],
                        "default": "customer_product",
                        "description": "Row grouping",
                        "name": "group_by",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "standard_quantity",
                            "remaining_quantity"
                        ],
                        "default": "standard_quantity",
                        "description": "Cell measure",
                        "name": "measure",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "wide_pivot_<period>_<YYYYMMDD>.csv",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/filter-options": {
            "get": {
                "description": "Lists the selectable values of every filter dimension and the ETD range.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Filters"
                ],
                "summary": "Filter options",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.FilterOptionsDTO"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/notifications/log": {
            "get": {
                "description": "Returns recent send attempts, newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "List notification log",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "delivery_schedule",
                            "overdue_alert",
                            "customs_clearance",
                            "customer_schedule"
                        ],
                        "description": "Notification kind",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "sent",
                            "failed",
                            "skipped"
                        ],
                        "description": "Send status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Recipient email",
                        "name": "email",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Earliest send date (YYYY-MM-DD)",
                        "name": "since",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Items per page (max 200)",
                        "name": "pageSize",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/domain.PaginatedResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/domain.NotificationLog"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "503": {
                        "description": "Notification log database disabled",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/notifications/preview": {
            "post": {
                "description": "Renders subject, HTML body and attachments for each recipient without sending anything.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "Preview notifications",
                "parameters": [
                    {
                        "description": "Notification request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.NotificationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.NotificationPreviewDTO"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "404": {
                        "description": "Named recipient not found",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "422": {
                        "description": "Too many recipients",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/notifications/recipients": {
            "get": {
                "description": "Lists who a notification kind would be sent to, with their active delivery counts in the window.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "List notification recipients",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "delivery_schedule",
                            "overdue_alert",
                            "customs_clearance",
                            "customer_schedule"
                        ],
                        "default": "delivery_schedule",
                        "description": "Notification kind",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Weeks ahead (defaults to the configured window)",
                        "name": "weeks",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Recipient"
                            }
                        }
                    },
                    "400": {
                        "description": "Unknown kind or invalid weeks",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/notifications/send": {
            "post": {
                "description": "Sends the notification emails of a request. The body must carry \"confirm\": true. Individual recipient failures are reported in the summary with a 200.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "Send notifications",
                "parameters": [
                    {
                        "description": "Notification request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.NotificationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SendSummary"
                        }
                    },
                    "400": {
                        "description": "Invalid request or missing confirmation",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "404": {
                        "description": "Named recipient not found",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "422": {
                        "description": "Too many recipients",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "429": {
                        "description": "Send rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/products/analysis": {
            "get": {
                "description": "Returns one entry per product with demand, inventory, gap and fulfillment status. Missing product-level columns are reported as notices. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Products"
                ],
                "summary": "Product gap analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.ProductAnalysis"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/products/export": {
            "get": {
                "description": "Downloads the product analysis as CSV. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Exports"
                ],
                "summary": "Export product analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "products_all_<YYYYMMDD>.csv",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/api/v1/products/top": {
            "get": {
                "description": "Ranks products by the selected measure, descending. List filters accept exclude_<dimension>=true to exclude the listed values instead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Products"
                ],
                "summary": "Top shortage products",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ETD from (YYYY-MM-DD)",
                        "name": "date_from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ETD to (YYYY-MM-DD)",
                        "name": "date_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Sales creators",
                        "name": "creators",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Customers",
                        "name": "customers",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to companies",
                        "name": "ship_to",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Products as \"<pt_code> - <name>\"",
                        "name": "products",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Brands",
                        "name": "brands",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to states or provinces",
                        "name": "states",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Ship-to countries",
                        "name": "countries",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Legal entities",
                        "name": "legal_entities",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "Overdue",
                                "Due Today",
                                "On Schedule",
                                "Completed",
                                "No ETD"
                            ]
                        },
                        "collectionFormat": "multi",
                        "description": "Timeline statuses",
                        "name": "timeline",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "Shipment statuses",
                        "name": "statuses",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "epe_only",
                            "non_epe_only"
                        ],
                        "description": "EPE company filter",
                        "name": "epe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "all",
                            "foreign_only",
                            "domestic_only"
                        ],
                        "description": "Customer versus legal entity country",
                        "name": "foreign",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 15,
                        "description": "Number of products (5-50)",
                        "name": "n",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "enum": [
                            "gap_quantity",
                            "gap_percentage",
                            "total_remaining_demand"
                        ],
                        "default": "gap_quantity",
                        "description": "Ranking measure",
                        "name": "sort",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/analysis.ProductAnalysis"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "502": {
                        "description": "Delivery view query failed",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/domain.APIError"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Checks every dependency. The delivery view is required; a disabled notification log database is reported as \"disabled\" and does not fail readiness.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/health/view": {
            "get": {
                "description": "Reports the delivery view connection with pool statistics.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Delivery view health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/deliveryview.HealthStatus"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/deliveryview.HealthStatus"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analysis.Metrics": {
            "type": "object",
            "properties": {
                "total_deliveries": {
                    "type": "integer"
                },
                "line_items": {
                    "type": "integer"
                },
                "unique_customers": {
                    "type": "integer"
                },
                "total_quantity": {
                    "type": "number"
                },
                "remaining_quantity": {
                    "type": "number"
                },
                "overdue_deliveries": {
                    "type": "integer"
                },
                "due_today_deliveries": {
                    "type": "integer"
                },
                "avg_fulfill_rate": {
                    "type": "number"
                },
                "unique_products": {
                    "type": "integer"
                },
                "products_out_of_stock": {
                    "type": "integer"
                },
                "total_product_gap": {
                    "type": "number"
                }
            }
        },
        "analysis.OverdueGroup": {
            "type": "object",
            "properties": {
                "customer": {
                    "type": "string"
                },
                "ship_to": {
                    "type": "string"
                },
                "deliveries": {
                    "type": "integer"
                },
                "line_items": {
                    "type": "integer"
                },
                "max_days_overdue": {
                    "type": "integer"
                },
                "remaining_quantity": {
                    "type": "number"
                }
            }
        },
        "analysis.OverdueSummary": {
            "type": "object",
            "properties": {
                "groups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.OverdueGroup"
                    }
                },
                "deliveries": {
                    "type": "integer"
                },
                "line_items": {
                    "type": "integer"
                },
                "max_days_overdue": {
                    "type": "integer"
                }
            }
        },
        "analysis.ProductAnalysis": {
            "type": "object",
            "properties": {
                "products": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.ProductSummary"
                    }
                },
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DataQualityNotice"
                    }
                },
                "degraded": {
                    "type": "boolean"
                }
            }
        },
        "analysis.ProductSummary": {
            "type": "object",
            "properties": {
                "product_id": {
                    "type": "integer"
                },
                "pt_code": {
                    "type": "string"
                },
                "product_pn": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "package_size": {
                    "type": "string"
                },
                "standard_uom": {
                    "type": "string"
                },
                "active_deliveries": {
                    "type": "integer"
                },
                "customers": {
                    "type": "integer"
                },
                "total_remaining_demand": {
                    "type": "number"
                },
                "product_total_remaining_demand": {
                    "type": "number"
                },
                "total_inventory": {
                    "type": "number"
                },
                "gap_quantity": {
                    "type": "number"
                },
                "fulfill_rate": {
                    "type": "number"
                },
                "gap_percentage": {
                    "type": "number"
                },
                "warehouse_count": {
                    "type": "integer"
                },
                "fulfillment_status": {
                    "type": "string"
                }
            }
        },
        "deliveryview.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "driver": {
                    "type": "string"
                },
                "latency_ms": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                },
                "max_open_connections": {
                    "type": "integer"
                },
                "open_connections": {
                    "type": "integer"
                },
                "in_use": {
                    "type": "integer"
                },
                "idle": {
                    "type": "integer"
                },
                "wait_count": {
                    "type": "integer"
                },
                "wait_time_ms": {
                    "type": "integer"
                }
            }
        },
        "domain.APIError": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.AttachmentInfo": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "content_type": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "domain.DataQualityNotice": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "domain.DeliveriesResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DeliveryLine"
                    }
                },
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DataQualityNotice"
                    }
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "domain.DeliveryLine": {
            "type": "object",
            "properties": {
                "delivery_id": {
                    "type": "integer"
                },
                "dn_number": {
                    "type": "string"
                },
                "sto_dr_line_id": {
                    "type": "integer"
                },
                "oc_id": {
                    "type": "integer"
                },
                "oc_number": {
                    "type": "string"
                },
                "oc_line_id": {
                    "type": "integer"
                },
                "oc_date": {
                    "type": "string"
                },
                "customer_po_number": {
                    "type": "string"
                },
                "product_id": {
                    "type": "integer"
                },
                "pt_code": {
                    "type": "string"
                },
                "product_pn": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "package_size": {
                    "type": "string"
                },
                "standard_uom": {
                    "type": "string"
                },
                "standard_quantity": {
                    "type": "number"
                },
                "remaining_quantity_to_deliver": {
                    "type": "number"
                },
                "gap_quantity": {
                    "type": "number"
                },
                "product_gap_quantity": {
                    "type": "number"
                },
                "product_total_remaining_demand": {
                    "type": "number"
                },
                "product_fulfill_rate_percent": {
                    "type": "number"
                },
                "total_instock_at_preferred_warehouse": {
                    "type": "number"
                },
                "total_instock_all_warehouses": {
                    "type": "number"
                },
                "etd": {
                    "type": "string"
                },
                "created_date": {
                    "type": "string"
                },
                "dispatched_date": {
                    "type": "string"
                },
                "delivered_date": {
                    "type": "string"
                },
                "days_overdue": {
                    "type": "integer"
                },
                "delivery_timeline_status": {
                    "type": "string"
                },
                "shipment_status": {
                    "type": "string"
                },
                "shipment_status_vn": {
                    "type": "string"
                },
                "fulfillment_status": {
                    "type": "string"
                },
                "product_fulfillment_status": {
                    "type": "string"
                },
                "is_delivered": {
                    "type": "boolean"
                },
                "customer": {
                    "type": "string"
                },
                "customer_code": {
                    "type": "string"
                },
                "customer_contact": {
                    "type": "string"
                },
                "customer_contact_email": {
                    "type": "string"
                },
                "customer_address": {
                    "type": "string"
                },
                "customer_country_code": {
                    "type": "string"
                },
                "customer_country_name": {
                    "type": "string"
                },
                "customer_state_province": {
                    "type": "string"
                },
                "recipient_company": {
                    "type": "string"
                },
                "recipient_company_code": {
                    "type": "string"
                },
                "recipient_contact": {
                    "type": "string"
                },
                "recipient_contact_email": {
                    "type": "string"
                },
                "recipient_address": {
                    "type": "string"
                },
                "recipient_country_code": {
                    "type": "string"
                },
                "recipient_country_name": {
                    "type": "string"
                },
                "recipient_state_province": {
                    "type": "string"
                },
                "legal_entity": {
                    "type": "string"
                },
                "legal_entity_code": {
                    "type": "string"
                },
                "legal_entity_country_code": {
                    "type": "string"
                },
                "created_by_name": {
                    "type": "string"
                },
                "created_by_email": {
                    "type": "string"
                },
                "preferred_warehouse": {
                    "type": "string"
                },
                "is_epe_company": {
                    "type": "string"
                },
                "shipping_cost": {
                    "type": "string"
                },
                "intl_charge": {
                    "type": "string"
                },
                "local_charge": {
                    "type": "string"
                }
            }
        },
        "domain.FilterOptionsDTO": {
            "type": "object",
            "properties": {
                "options": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                },
                "min_etd": {
                    "type": "string"
                },
                "max_etd": {
                    "type": "string"
                }
            }
        },
        "domain.NotificationLog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "recipient": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "cc": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "deliveries": {
                    "type": "integer"
                },
                "notes": {
                    "type": "string"
                },
                "attachments": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "domain.NotificationPreviewDTO": {
            "type": "object",
            "properties": {
                "recipient": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "cc": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "subject": {
                    "type": "string"
                },
                "html": {
                    "type": "string"
                },
                "deliveries": {
                    "type": "integer"
                },
                "attachments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.AttachmentInfo"
                    }
                },
                "notes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "notices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DataQualityNotice"
                    }
                }
            }
        },
        "domain.NotificationRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "recipients": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "customs_to": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "extra_cc": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "include_cc": {
                    "type": "boolean"
                },
                "weeks_ahead": {
                    "type": "integer"
                },
                "confirm": {
                    "type": "boolean"
                },
                "archive_files": {
                    "type": "boolean"
                }
            }
        },
        "domain.PaginatedResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "domain.Recipient": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "manager_name": {
                    "type": "string"
                },
                "manager_email": {
                    "type": "string"
                },
                "active_deliveries": {
                    "type": "integer"
                },
                "overdue_deliveries": {
                    "type": "integer"
                },
                "due_today": {
                    "type": "integer"
                }
            }
        },
        "domain.SendResult": {
            "type": "object",
            "properties": {
                "recipient": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "deliveries": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "notes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.SendSummary": {
            "type": "object",
            "properties": {
                "sent": {
                    "type": "integer"
                },
                "failed": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "integer"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.SendResult"
                    }
                }
            }
        },
        "pivot.Row": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "period_start": {
                    "type": "string"
                },
                "customer": {
                    "type": "string"
                },
                "ship_to": {
                    "type": "string"
                },
                "deliveries": {
                    "type": "integer"
                },
                "line_items": {
                    "type": "integer"
                },
                "products": {
                    "type": "integer"
                },
                "standard_quantity": {
                    "type": "number"
                },
                "remaining_quantity": {
                    "type": "number"
                },
                "gap_quantity": {
                    "type": "number"
                },
                "product_gap_quantity": {
                    "type": "number"
                }
            }
        },
        "pivot.Table": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pivot.Row"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/pivot.Totals"
                },
                "unscheduled": {
                    "type": "integer"
                }
            }
        },
        "pivot.Totals": {
            "type": "object",
            "properties": {
                "line_items": {
                    "type": "integer"
                },
                "standard_quantity": {
                    "type": "number"
                },
                "remaining_quantity": {
                    "type": "number"
                },
                "gap_quantity": {
                    "type": "number"
                }
            }
        },
        "pivot.WideRow": {
            "type": "object",
            "properties": {
                "customer": {
                    "type": "string"
                },
                "pt_code": {
                    "type": "string"
                },
                "product_pn": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "package_size": {
                    "type": "string"
                },
                "values": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "pivot.WideTable": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "group_by": {
                    "type": "string"
                },
                "measure": {
                    "type": "string"
                },
                "columns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pivot.WideRow"
                    }
                },
                "column_totals": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "grand_total": {
                    "type": "number"
                },
                "unscheduled": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Outbound Logistics API",
	Description:      "Outbound delivery reporting, product gap analysis and delivery notification emails",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
