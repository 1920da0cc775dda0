package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Mess Manager API",
        "description": "College dining management: student registry, waste ledger, menu suggestions",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Mess student registry"},
        {"name": "Waste", "description": "Append-only food waste ledger"},
        {"name": "Suggestions", "description": "Menu suggestions from students"},
        {"name": "Dashboard", "description": "Derived summary figures"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure or duplicate registration number", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete a student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/waste": {
            "get": {
                "tags": ["Waste"],
                "summary": "List all waste entries, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WasteEntry"}}}
                }
            },
            "post": {
                "tags": ["Waste"],
                "summary": "Record a waste entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WasteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/WasteEntry"}}
                }
            }
        },
        "/api/waste/history": {
            "get": {
                "tags": ["Waste"],
                "summary": "Most recent waste entries",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WasteEntry"}}}
                }
            }
        },
        "/api/suggestions": {
            "get": {
                "tags": ["Suggestions"],
                "summary": "List menu suggestions, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Suggestions"],
                "summary": "Submit a menu suggestion",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SuggestionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/dashboard/summary": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Waste totals, student counts and suggestion tally",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "regNo": {"type": "string"},
                "name": {"type": "string"},
                "block": {"type": "string"},
                "roomNumber": {"type": "string"},
                "mess": {"type": "string"},
                "messType": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "StudentRequest": {
            "type": "object",
            "properties": {
                "regNo": {"type": "string", "example": "23CSE0001"},
                "name": {"type": "string"},
                "block": {"type": "string", "example": "A"},
                "roomNumber": {"type": "string", "example": "101"},
                "mess": {"type": "string", "enum": ["Anna Mess", "Bharathiar Mess", "Tagore Mess", "Gandhi Mess"]},
                "messType": {"type": "string", "enum": ["Veg", "Non-Veg", "Special", "Night mess"]}
            },
            "required": ["regNo", "name", "block", "roomNumber", "mess", "messType"]
        },
        "WasteEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["prep", "plate", "storage", "other"]},
                "amount": {"type": "number"},
                "reason": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "WasteRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["prep", "plate", "storage", "other"]},
                "amount": {"type": "number"},
                "reason": {"type": "string"}
            },
            "required": ["type", "amount", "reason"]
        },
        "SuggestionRequest": {
            "type": "object",
            "properties": {
                "mealType": {"type": "string", "enum": ["breakfast", "lunch", "snacks", "dinner"]},
                "suggestion": {"type": "string", "minLength": 10},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "feasibleForMassProduction": {"type": "boolean"},
                "allergies": {"type": "boolean"},
                "date": {"type": "string"}
            },
            "required": ["mealType", "suggestion"]
        },
        "DashboardSummary": {
            "type": "object",
            "properties": {
                "students": {"$ref": "#/definitions/StudentCounts"},
                "waste": {"$ref": "#/definitions/WasteTotals"},
                "suggestions": {"type": "integer"},
                "generatedAt": {"type": "string"}
            }
        },
        "WasteTotals": {
            "type": "object",
            "properties": {
                "prep": {"type": "number"},
                "plate": {"type": "number"},
                "storage": {"type": "number"},
                "other": {"type": "number"},
                "total": {"type": "number"}
            }
        },
        "StudentCounts": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "byMess": {"type": "object"},
                "byMessType": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "count": {"type": "integer"},
                "data": {"type": "object"},
                "errors": {"type": "array", "items": {"type": "string"}}
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
