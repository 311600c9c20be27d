// Package docs registers the OpenAPI document served under /swagger. It
// follows the layout `swag init` emits from the handler annotations; keep the
// two in step when a route changes.
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
        "/book": {
            "post": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Add a book",
                "parameters": [
                    {"description": "Book", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/book.CreateBookReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/book/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Get a book",
                "parameters": [
                    {"type": "integer", "description": "Book ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "put": {
                "security": [{"TokenAuth": []}],
                "description": "Partial update; omitted fields keep their stored value",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Update a book",
                "parameters": [
                    {"type": "integer", "description": "Book ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/book.UpdateBookReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Delete a book",
                "parameters": [
                    {"type": "integer", "description": "Book ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/books": {
            "get": {
                "description": "Paginated listing with optional case-insensitive substring filters",
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "parameters": [
                    {"type": "integer", "description": "page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size (default 10)", "name": "per_page", "in": "query"},
                    {"type": "string", "description": "title contains", "name": "title", "in": "query"},
                    {"type": "string", "description": "author contains", "name": "author", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BookPage"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Login with the configured username + password, returns an opaque token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/member": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Add a member",
                "parameters": [
                    {"description": "Member", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/member.MemberReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/member/{id}": {
            "put": {
                "description": "Both fields are required and overwrite the stored values",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Replace a member",
                "parameters": [
                    {"type": "integer", "description": "Member ID", "name": "id", "in": "path", "required": true},
                    {"description": "Member", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/member.MemberReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "Delete a member",
                "parameters": [
                    {"type": "integer", "description": "Member ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/members": {
            "get": {
                "produces": ["application/json"],
                "tags": ["members"],
                "summary": "List members",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Member"}}}
                }
            }
        }
    },
    "definitions": {
        "book.CreateBookReq": {
            "type": "object",
            "required": ["author", "isbn", "title"],
            "properties": {
                "author": {"type": "string"},
                "isbn": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "book.UpdateBookReq": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "isbn": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "member.MemberReq": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "model.Book": {
            "type": "object",
            "properties": {
                "author": {"type": "string"},
                "id": {"type": "integer"},
                "isbn": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "model.BookPage": {
            "type": "object",
            "properties": {
                "books": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}},
                "page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "model.LoginReq": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.Member": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "description": "Raw token from POST /login, no scheme prefix",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Library Management API",
	Description:      "Books and members over a relational store; book writes need a login token.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
