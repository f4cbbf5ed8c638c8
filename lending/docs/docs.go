// Package docs registers the lending API description with swag.
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
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RegisterParams"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Check user credentials",
                "parameters": [
                    {"description": "credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/users/{userId}/role": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Grant or revoke the admin role",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "userId", "in": "path", "required": true},
                    {"description": "role", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.roleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Search books by title, author or ISBN",
                "parameters": [
                    {"type": "string", "description": "substring", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}}
                }
            }
        },
        "/cds": {
            "get": {
                "description": "artist and genre are exact case-insensitive filters, q is a substring match",
                "produces": ["application/json"],
                "tags": ["cds"],
                "summary": "Search CDs",
                "parameters": [
                    {"type": "string", "description": "substring", "name": "q", "in": "query"},
                    {"type": "string", "description": "artist", "name": "artist", "in": "query"},
                    {"type": "string", "description": "genre", "name": "genre", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.CD"}}}
                }
            }
        },
        "/loans/{media}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["loans"],
                "summary": "Borrow a book or CD",
                "parameters": [
                    {"type": "string", "description": "BOOK or CD", "name": "media", "in": "path", "required": true},
                    {"description": "item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.borrowRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Loan"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/loans/{media}/{loanId}/return": {
            "post": {
                "produces": ["application/json"],
                "tags": ["loans"],
                "summary": "Return a loan",
                "parameters": [
                    {"type": "string", "description": "BOOK or CD", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "loan id", "name": "loanId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Loan"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/fines/{media}/{fineId}/pay": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["fines"],
                "summary": "Pay a fine, partially or in full",
                "parameters": [
                    {"type": "string", "description": "BOOK or CD", "name": "media", "in": "path", "required": true},
                    {"type": "string", "description": "fine id", "name": "fineId", "in": "path", "required": true},
                    {"description": "amount", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.payRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Fine"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/admin/reminders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Send overdue and return reminders",
                "parameters": [
                    {"description": "return reminder window", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.reminderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ReminderReport"}}
                }
            }
        }
    },
    "definitions": {
        "errs.ValidationErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "kind": {"type": "string"}}
        },
        "handler.borrowRequest": {
            "type": "object",
            "required": ["itemId"],
            "properties": {"itemId": {"type": "string"}, "userId": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.payRequest": {
            "type": "object",
            "properties": {"amount": {"type": "string", "example": "12.50"}}
        },
        "handler.reminderRequest": {
            "type": "object",
            "properties": {"daysBefore": {"type": "integer"}}
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "active": {"type": "boolean"},
                "createdAt": {"type": "string"}
            }
        },
        "model.Book": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "isbn": {"type": "string"},
                "available": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.CD": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "artist": {"type": "string"},
                "genre": {"type": "string"},
                "trackCount": {"type": "integer"},
                "publisher": {"type": "string"},
                "releaseYear": {"type": "integer"},
                "available": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.Loan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "itemId": {"type": "string"},
                "borrowDate": {"type": "string"},
                "dueDate": {"type": "string"},
                "returnDate": {"type": "string"},
                "returned": {"type": "boolean"},
                "fineAmount": {"type": "string"}
            }
        },
        "model.Fine": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "loanId": {"type": "string"},
                "amount": {"type": "string"},
                "paidAmount": {"type": "string"},
                "issuedDate": {"type": "string"},
                "paidDate": {"type": "string"},
                "paid": {"type": "boolean"}
            }
        },
        "service.RegisterParams": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.roleRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["ADMIN", "USER"]}
            }
        },
        "service.ReminderReport": {
            "type": "object",
            "properties": {"overdue": {"type": "integer"}, "return": {"type": "integer"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Lending API",
	Description:      "Book and CD lending with overdue fines.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
