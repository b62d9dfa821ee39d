// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is ready"}, "503": {"description": "Task snapshot not loaded yet"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "description": "Returns the task snapshot, refreshed from Google Tasks when stale. Each task carries its parsed reminder and links.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Not signed in to Google", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Google Tasks unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Add a task",
                "description": "Creates a task. A reminder is stored as a \"[HH:MM]\" prefix of the notes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "description": "Task data", "schema": {"$ref": "#/definitions/http.addReq"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Google Tasks unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/refresh": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Refresh tasks",
                "description": "Forces a list from Google Tasks.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/tasks/{id}/toggle": {
            "patch": {
                "tags": ["Tasks"],
                "summary": "Toggle a task",
                "description": "Flips a task between needsAction and completed.",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/tasks/{id}": {
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/reminders": {
            "get": {
                "tags": ["Reminders"],
                "summary": "Triggered reminders",
                "description": "Returns tasks whose reminder window has opened, ordered by trigger time. Tasks with links are flagged actionable.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/background": {
            "get": {
                "tags": ["Background"],
                "summary": "Background photo",
                "description": "Returns the photo shown behind the clock. It is fetched once per process.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Photo source unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/clock": {
            "get": {
                "tags": ["Clock"],
                "summary": "Clock and greeting",
                "description": "Returns the wall-clock time and a time-of-day greeting for the signed-in user.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "http.addReq": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "notes": {"type": "string"},
                "reminder": {"type": "string", "example": "09:30"},
                "due": {"type": "string", "example": "tomorrow"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Momentum Tab API",
	Description:      "Backend for the momentum new-tab page: Google Tasks, reminders, clock and background.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
