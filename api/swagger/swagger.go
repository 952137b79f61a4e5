package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Proffy API",
        "description": "Matches students to tutors by subject, weekday and time of day.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Classes", "description": "Class search and tutor registration"},
        {"name": "Connections", "description": "Student-to-tutor contact events"}
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
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "Search classes by subject, weekday and time",
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string", "required": true},
                    {"name": "week_day", "in": "query", "type": "integer", "required": true, "description": "0-6, Sunday first"},
                    {"name": "time", "in": "query", "type": "string", "required": true, "description": "HH:MM, 24-hour clock"}
                ],
                "responses": {
                    "200": {
                        "description": "Matching classes joined with their tutors",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/ClassWithUser"}}
                    },
                    "400": {"description": "Missing filter or malformed time", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Register a tutor profile, a class and its weekly windows",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Registration failed", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/connections": {
            "get": {
                "tags": ["Connections"],
                "summary": "Total recorded contact events",
                "responses": {
                    "200": {"description": "Total connections"}
                }
            },
            "post": {
                "tags": ["Connections"],
                "summary": "Record a contact event",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing user_id", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "ClassWithUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "subject": {"type": "string"},
                "cost": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "whatsapp": {"type": "string"},
                "bio": {"type": "string"}
            }
        },
        "RegisterClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "whatsapp": {"type": "string"},
                "bio": {"type": "string"},
                "subject": {"type": "string"},
                "cost": {"type": "string"},
                "schedule": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "week_day": {"type": "integer"},
                            "from": {"type": "string"},
                            "to": {"type": "string"}
                        }
                    }
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
