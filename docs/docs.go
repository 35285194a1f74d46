// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "octaview",
            "url": "t.me/octaview",
            "email": "octaviewes@gmail.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {"tags": ["System"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/layout": {
            "get": {"tags": ["Boards"], "summary": "Board order, stage template and roster", "responses": {"200": {"description": "OK"}}}
        },
        "/boards": {
            "get": {
                "tags": ["Boards"],
                "summary": "List boards with filtered columns",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query"},
                    {"type": "string", "name": "analyst", "in": "query"},
                    {"type": "string", "name": "account_manager", "in": "query"},
                    {"type": "string", "name": "date_from", "in": "query"},
                    {"type": "string", "name": "date_to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/boards/{board}": {
            "get": {
                "tags": ["Boards"],
                "summary": "Get one board",
                "parameters": [{"type": "string", "name": "board", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}
            }
        },
        "/boards/{board}/summary": {
            "get": {
                "tags": ["Boards"],
                "summary": "Per-column task counts",
                "parameters": [{"type": "string", "name": "board", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}
            }
        },
        "/boards/{board}/tasks": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task in the intake column",
                "parameters": [{"type": "string", "name": "board", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad request"}, "404": {"description": "Board not found"}}
            }
        },
        "/boards/{board}/tasks/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Edit a task in the intake column",
                "parameters": [
                    {"type": "string", "name": "board", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad request"}, "404": {"description": "Not found"}}
            }
        },
        "/boards/{board}/columns/{column}/tasks/{id}": {
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "name": "board", "in": "path", "required": true},
                    {"type": "string", "name": "column", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No content"}, "404": {"description": "Board not found"}}
            }
        },
        "/moves": {
            "post": {"tags": ["Tasks"], "summary": "Apply a finished drag", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad request"}}}
        },
        "/drafts/comments": {
            "post": {"tags": ["Drafts"], "summary": "Append a comment to a task draft", "responses": {"200": {"description": "OK"}, "400": {"description": "Text is required"}}}
        },
        "/drafts/notes": {
            "post": {"tags": ["Drafts"], "summary": "Append a note to a task draft", "responses": {"200": {"description": "OK"}, "400": {"description": "Text is required"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Optional. Type \"Bearer\" followed by a space and JWT token to act as a named user.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Multi-board Kanban API",
	Description:      "Boards of tasks that graduate from one board to the next.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
