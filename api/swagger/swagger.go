package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Manpower ERP API",
        "description": "Recruitment records, attendance, payroll and agent commissions for overseas placement agencies.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Sessions", "description": "Per-user working sessions, each with its own record store"},
        {"name": "Candidates", "description": "Candidate roster and visa workflow"},
        {"name": "Attendance", "description": "Daily attendance log"},
        {"name": "Dashboard", "description": "Headline metrics"},
        {"name": "Alerts", "description": "Passport and iqama expiry alerts"},
        {"name": "Commissions", "description": "Agent commission rollups"},
        {"name": "Payroll", "description": "Attendance based salary"},
        {"name": "Exports", "description": "CSV, PDF and XLSX downloads"},
        {"name": "Shop", "description": "Demo shop cart"}
    ],
    "parameters": {
        "SessionHeader": {"name": "X-Session-ID", "in": "header", "type": "string", "description": "Session id; a new session is started when missing or unknown"}
    },
    "paths": {
        "/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Start a session with a freshly seeded record store",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/sessions/current": {
            "delete": {
                "tags": ["Sessions"],
                "summary": "End the current session",
                "parameters": [{"$ref": "#/parameters/SessionHeader"}],
                "responses": {"204": {"description": "Ended"}}
            }
        },
        "/candidates": {
            "get": {
                "tags": ["Candidates"],
                "summary": "List candidates in insertion order",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "country", "in": "query", "type": "string"},
                    {"name": "visaStatus", "in": "query", "type": "string"},
                    {"name": "agent", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Candidates"],
                "summary": "Register a candidate",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/candidates/{id}": {
            "get": {
                "tags": ["Candidates"],
                "summary": "Get a candidate",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/candidates/{id}/status": {
            "patch": {
                "tags": ["Candidates"],
                "summary": "Move a candidate to another workflow stage",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateVisaStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown status", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/visa-statuses": {
            "get": {
                "tags": ["Candidates"],
                "summary": "Workflow status vocabulary",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "candidateId", "in": "query", "type": "integer"},
                    {"name": "date", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Record one day's attendance",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown candidate", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Headline recruitment metrics",
                "parameters": [{"$ref": "#/parameters/SessionHeader"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/alerts/expiry": {
            "get": {
                "tags": ["Alerts"],
                "summary": "Documents expiring inside the alert window",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "asOf", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad date", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/commissions": {
            "get": {
                "tags": ["Commissions"],
                "summary": "Commission owed per agent",
                "parameters": [{"$ref": "#/parameters/SessionHeader"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/commissions/{agent}": {
            "get": {
                "tags": ["Commissions"],
                "summary": "Candidates and commission for one agent",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "agent", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/payroll": {
            "post": {
                "tags": ["Payroll"],
                "summary": "Net salary from basic salary and present days",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PayrollRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown candidate", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{report}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a report",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "report", "in": "path", "required": true, "type": "string", "enum": ["candidates", "commissions", "attendance"]},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unknown report or format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/shop/products": {
            "get": {
                "tags": ["Shop"],
                "summary": "Product catalog",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/shop/cart": {
            "get": {
                "tags": ["Shop"],
                "summary": "Current cart and total",
                "parameters": [{"$ref": "#/parameters/SessionHeader"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/shop/cart/items": {
            "post": {
                "tags": ["Shop"],
                "summary": "Add one unit of a product",
                "parameters": [
                    {"$ref": "#/parameters/SessionHeader"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddToCartRequest"}}
                ],
                "responses": {
                    "201": {"description": "Added", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown product", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/shop/cart/checkout": {
            "post": {
                "tags": ["Shop"],
                "summary": "Place an order for the cart contents",
                "parameters": [{"$ref": "#/parameters/SessionHeader"}],
                "responses": {
                    "201": {"description": "Order placed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Empty cart", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateCandidateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "passport_number": {"type": "string"},
                "passport_expiry": {"type": "string", "format": "date"},
                "iqama_number": {"type": "string"},
                "iqama_expiry": {"type": "string", "format": "date"},
                "visa_status": {"type": "string"},
                "agent_name": {"type": "string"},
                "agent_commission": {"type": "integer", "minimum": 0},
                "country": {"type": "string"}
            }
        },
        "UpdateVisaStatusRequest": {
            "type": "object",
            "required": ["visa_status"],
            "properties": {
                "visa_status": {"type": "string"}
            }
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "required": ["date", "candidate_id", "present"],
            "properties": {
                "date": {"type": "string", "format": "date"},
                "candidate_id": {"type": "integer"},
                "present": {"type": "boolean"}
            }
        },
        "PayrollRequest": {
            "type": "object",
            "required": ["candidate_id", "basic_salary"],
            "properties": {
                "candidate_id": {"type": "integer"},
                "basic_salary": {"type": "number", "exclusiveMinimum": true, "minimum": 0}
            }
        },
        "AddToCartRequest": {
            "type": "object",
            "required": ["product_id"],
            "properties": {
                "product_id": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
