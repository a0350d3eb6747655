package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "DigiSalama Fleet API", "description": "Organisations, vehicles, driven distances and refuels of a vehicle fleet", "version": "1.0.0"},
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
    "tags": [
        {"name": "Authentication"},
        {"name": "Organisations", "description": "Fleet owners"},
        {"name": "Vehicles", "description": "Vehicles and their reports"},
        {"name": "Distances", "description": "Driven distance records"},
        {"name": "Refuels", "description": "Refuel records"},
        {"name": "Events", "description": "Mutation audit trail"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check", "responses": {"200": {"description": "Every dependency answered"}, "503": {"description": "A dependency failed"}}}
        },
        "/metrics": {
            "get": {"summary": "Prometheus metrics", "produces": ["text/plain"], "responses": {"200": {"description": "OK"}}}
        },
        "/api2/auth/login": {
            "post": {"tags": ["Authentication"], "summary": "Authenticate user", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api2/auth/me": {
            "get": {"tags": ["Authentication"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Unauthorized"}}}
        },
        "/api2/events": {
            "get": {"tags": ["Events"], "summary": "Audit trail", "security": [{"BearerAuth": []}], "parameters": [{"name": "action", "in": "query", "type": "string"}, {"name": "who_did", "in": "query", "type": "string"}, {"name": "page", "in": "query", "type": "integer"}, {"name": "page_size", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api2/organisations": {
            "get": {"tags": ["Organisations"], "summary": "List organisations", "security": [{"BearerAuth": []}], "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "page_size", "in": "query", "type": "integer"}, {"name": "search", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Organisations"], "summary": "Create organisation", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Identifier supplied", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "put": {"tags": ["Organisations"], "summary": "Replace organisations in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "400": {"description": "Empty batch", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Organisations"], "summary": "Partially update organisations in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}},
            "delete": {"tags": ["Organisations"], "summary": "Delete organisations in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item deleted", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/organisations/batch": {
            "post": {"tags": ["Organisations"], "summary": "Create organisations in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/organisations/{id}": {
            "get": {"tags": ["Organisations"], "summary": "Get organisation", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Organisations"], "summary": "Replace organisation", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "patch": {"tags": ["Organisations"], "summary": "Partially update organisation", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "delete": {"tags": ["Organisations"], "summary": "Delete organisation", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Refused", "schema": {"$ref": "#/definitions/MutationResult"}}}}
        },
        "/api2/vehicles": {
            "get": {"tags": ["Vehicles"], "summary": "List vehicles", "security": [{"BearerAuth": []}], "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "page_size", "in": "query", "type": "integer"}, {"name": "search", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Vehicles"], "summary": "Create vehicle", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Identifier supplied", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "put": {"tags": ["Vehicles"], "summary": "Replace vehicles in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "400": {"description": "Empty batch", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Vehicles"], "summary": "Partially update vehicles in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}},
            "delete": {"tags": ["Vehicles"], "summary": "Delete vehicles in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item deleted", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/vehicles/batch": {
            "post": {"tags": ["Vehicles"], "summary": "Create vehicles in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/vehicles/{id}": {
            "get": {"tags": ["Vehicles"], "summary": "Get vehicle", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Vehicles"], "summary": "Replace vehicle", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "patch": {"tags": ["Vehicles"], "summary": "Partially update vehicle", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "delete": {"tags": ["Vehicles"], "summary": "Delete vehicle", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Refused", "schema": {"$ref": "#/definitions/MutationResult"}}}}
        },
        "/api2/distances": {
            "get": {"tags": ["Distances"], "summary": "List distances", "security": [{"BearerAuth": []}], "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "page_size", "in": "query", "type": "integer"}, {"name": "search", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Distances"], "summary": "Create distance", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Identifier supplied", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "put": {"tags": ["Distances"], "summary": "Replace distances in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "400": {"description": "Empty batch", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Distances"], "summary": "Partially update distances in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}},
            "delete": {"tags": ["Distances"], "summary": "Delete distances in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item deleted", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/distances/batch": {
            "post": {"tags": ["Distances"], "summary": "Create distances in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/distances/{id}": {
            "get": {"tags": ["Distances"], "summary": "Get distance", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Distances"], "summary": "Replace distance", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "patch": {"tags": ["Distances"], "summary": "Partially update distance", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "delete": {"tags": ["Distances"], "summary": "Delete distance", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Refused", "schema": {"$ref": "#/definitions/MutationResult"}}}}
        },
        "/api2/refuels": {
            "get": {"tags": ["Refuels"], "summary": "List refuels", "security": [{"BearerAuth": []}], "parameters": [{"name": "page", "in": "query", "type": "integer"}, {"name": "page_size", "in": "query", "type": "integer"}, {"name": "search", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Refuels"], "summary": "Create refuel", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Identifier supplied", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "put": {"tags": ["Refuels"], "summary": "Replace refuels in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "400": {"description": "Empty batch", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "patch": {"tags": ["Refuels"], "summary": "Partially update refuels in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}},
            "delete": {"tags": ["Refuels"], "summary": "Delete refuels in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item deleted", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/refuels/batch": {
            "post": {"tags": ["Refuels"], "summary": "Create refuels in batch", "security": [{"BearerAuth": []}], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}], "responses": {"200": {"description": "Every item saved", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}, "207": {"description": "At least one item failed", "schema": {"type": "array", "items": {"$ref": "#/definitions/MutationResult"}}}}}
        },
        "/api2/refuels/{id}": {
            "get": {"tags": ["Refuels"], "summary": "Get refuel", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Refuels"], "summary": "Replace refuel", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "400": {"description": "Invalid", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "patch": {"tags": ["Refuels"], "summary": "Partially update refuel", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}}},
            "delete": {"tags": ["Refuels"], "summary": "Delete refuel", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MutationResult"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}, "405": {"description": "Refused", "schema": {"$ref": "#/definitions/MutationResult"}}}}
        },
        "/api2/vehicles/{id}/summary": {
            "get": {"tags": ["Vehicles"], "summary": "Vehicle totals", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Vehicle not found"}}}
        },
        "/api2/vehicles/{id}/distances": {
            "get": {"tags": ["Vehicles"], "summary": "Vehicle distance records", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Vehicle not found"}}}
        },
        "/api2/vehicles/{id}/refuels": {
            "get": {"tags": ["Vehicles"], "summary": "Vehicle refuel records", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Vehicle not found"}}}
        },
        "/api2/vehicles/{id}/logbook": {
            "get": {"tags": ["Vehicles"], "summary": "Export vehicle logbook", "security": [{"BearerAuth": []}], "produces": ["text/csv", "application/pdf"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}], "responses": {"200": {"description": "Document", "schema": {"type": "file"}}, "400": {"description": "Unknown format"}, "404": {"description": "Vehicle not found"}}}
        }
    },
    "definitions": {
        "LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "MutationResult": {"type": "object", "properties": {"body": {"type": "object"}, "http_status": {"type": "integer"}, "message": {"type": "string"}}},
        "Pagination": {"type": "object", "properties": {"page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_count": {"type": "integer"}}},
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}}},
        "ResponseEnvelope": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}, "pagination": {"$ref": "#/definitions/Pagination"}, "meta": {"type": "object"}}}
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
