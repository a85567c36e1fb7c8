// Package docs holds the OpenAPI document served at /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/user/create/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/user/token/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Obtain a token",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/user/me/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Update current user",
                "parameters": [
                    {"description": "Username and password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.profileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Update current user (partial)",
                "parameters": [
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.profileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/systems/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Systems owned by the caller. Date bounds accept RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only upper bound covers the whole day.",
                "produces": ["application/json"],
                "tags": ["systems"],
                "summary": "List systems",
                "parameters": [
                    {"type": "string", "example": "London", "description": "Case-insensitive substring", "name": "location", "in": "query"},
                    {"type": "string", "description": "Created at or after", "name": "created_min", "in": "query"},
                    {"type": "string", "description": "Created at or before", "name": "created_max", "in": "query"},
                    {"type": "string", "description": "Updated at or after", "name": "updated_min", "in": "query"},
                    {"type": "string", "description": "Updated at or before", "name": "updated_max", "in": "query"},
                    {"type": "string", "example": "-created", "description": "created, updated; '-' for descending", "name": "ordering", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.System"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["systems"],
                "summary": "Create system",
                "parameters": [
                    {"description": "System payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SystemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.System"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/systems/{id}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Includes the 10 most recent measurements, newest first.",
                "produces": ["application/json"],
                "tags": ["systems"],
                "summary": "Get system",
                "parameters": [
                    {"type": "integer", "description": "System id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SystemDetail"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["systems"],
                "summary": "Replace system",
                "parameters": [
                    {"type": "integer", "description": "System id", "name": "id", "in": "path", "required": true},
                    {"description": "Title and location", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SystemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.System"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["systems"],
                "summary": "Update system (partial)",
                "parameters": [
                    {"type": "integer", "description": "System id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SystemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.System"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes the system and all of its measurements.",
                "tags": ["systems"],
                "summary": "Delete system",
                "parameters": [
                    {"type": "integer", "description": "System id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/systems/{id}/ws": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "WebSocket. Sends the system detail (with recent measurements) immediately and then every interval.",
                "tags": ["systems"],
                "summary": "Stream system detail",
                "parameters": [
                    {"type": "integer", "description": "System id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "example": "2s", "description": "Go duration, max 10s", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Milliseconds, max 10000", "name": "interval_ms", "in": "query"}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/measurements/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Measurements of systems owned by the caller. Numeric bounds are inclusive.",
                "produces": ["application/json"],
                "tags": ["measurements"],
                "summary": "List measurements",
                "parameters": [
                    {"type": "integer", "description": "Parent system id", "name": "hydroponic_system", "in": "query"},
                    {"type": "string", "example": "2025-08-01", "description": "Taken at or after", "name": "start_date", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "description": "Taken at or before; date-only covers the day", "name": "end_date", "in": "query"},
                    {"type": "number", "description": "Minimum pH", "name": "ph_min", "in": "query"},
                    {"type": "number", "description": "Maximum pH", "name": "ph_max", "in": "query"},
                    {"type": "number", "description": "Minimum temperature", "name": "temperature_min", "in": "query"},
                    {"type": "number", "description": "Maximum temperature", "name": "temperature_max", "in": "query"},
                    {"type": "number", "description": "Minimum TDS", "name": "tds_min", "in": "query"},
                    {"type": "number", "description": "Maximum TDS", "name": "tds_max", "in": "query"},
                    {"type": "string", "example": "-timestamp", "description": "timestamp, ph, temperature, tds; '-' for descending", "name": "ordering", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Measurement"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "The parent system must belong to the caller.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["measurements"],
                "summary": "Create measurement",
                "parameters": [
                    {"description": "Measurement payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MeasurementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Measurement"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/measurements/{id}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["measurements"],
                "summary": "Get measurement",
                "parameters": [
                    {"type": "integer", "description": "Measurement id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Measurement"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "The parent system cannot be changed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["measurements"],
                "summary": "Replace measurement readings",
                "parameters": [
                    {"type": "integer", "description": "Measurement id", "name": "id", "in": "path", "required": true},
                    {"description": "All readings", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MeasurementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Measurement"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "The parent system cannot be changed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["measurements"],
                "summary": "Update measurement (partial)",
                "parameters": [
                    {"type": "integer", "description": "Measurement id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.MeasurementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Measurement"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["measurements"],
                "summary": "Delete measurement",
                "parameters": [
                    {"type": "integer", "description": "Measurement id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.MeasurementRequest": {
            "type": "object",
            "properties": {
                "hydroponic_system": {"type": "integer", "example": 1},
                "ph": {"type": "string", "example": "6.50"},
                "temperature": {"type": "string", "example": "21.30"},
                "tds": {"type": "string", "example": "410.00"}
            }
        },
        "handlers.SystemRequest": {
            "type": "object",
            "properties": {
                "location": {"type": "string", "maxLength": 100, "example": "London"},
                "title": {"type": "string", "maxLength": 100, "example": "Greenhouse A"}
            }
        },
        "handlers.authCredentials": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "example": "s3cret-pass"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.profileRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "example": "n3w-s3cret"},
                "username": {"type": "string", "maxLength": 150, "example": "alice"}
            }
        },
        "handlers.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "models.Measurement": {
            "type": "object",
            "properties": {
                "hydroponic_system": {"type": "integer"},
                "id": {"type": "integer"},
                "ph": {"type": "string"},
                "tds": {"type": "string"},
                "temperature": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.System": {
            "type": "object",
            "properties": {
                "created": {"type": "string"},
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "title": {"type": "string"},
                "updated": {"type": "string"},
                "user": {"type": "integer"}
            }
        },
        "models.SystemDetail": {
            "type": "object",
            "properties": {
                "created": {"type": "string"},
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "measurements": {"type": "array", "items": {"$ref": "#/definitions/models.Measurement"}},
                "title": {"type": "string"},
                "updated": {"type": "string"},
                "user": {"type": "integer"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Schemes:          []string{},
	Title:            "Hydroponics API",
	Description:      "Hydroponic systems and their sensor measurements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
