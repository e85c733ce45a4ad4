// Package docs registers the OpenAPI document served under /docs/.
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
        "/friends/request": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a pending relationship from the caller to the named user unless the two are already related in either direction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Friends"],
                "summary": "Send a friend request",
                "parameters": [
                    {
                        "description": "Target username",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.FriendRequestInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.FriendRequestResponse"}},
                    "400": {"description": "Request to self", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "409": {"description": "Already related", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Authenticates against the identity service and returns the access token, account and profile.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in with email and password",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "401": {"description": "Login failed", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "500": {"description": "Profile fetch failed", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/protected": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Greet the authenticated caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/signup": {
            "post": {
                "description": "Creates the account in the identity service, then inserts a profile. The username defaults to the local part of the email.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Create an account and its profile",
                "parameters": [
                    {
                        "description": "New account",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.SignupRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SignupResponse"}},
                    "400": {"description": "Signup failed", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "500": {"description": "Profile insert failed", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.FriendRequestInput": {
            "type": "object",
            "properties": {"username": {"type": "string"}}
        },
        "handlers.FriendRequestResponse": {
            "type": "object",
            "properties": {
                "friends": {"$ref": "#/definitions/models.Friend"},
                "message": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "profile": {"$ref": "#/definitions/models.Profile"},
                "user": {"$ref": "#/definitions/identity.Account"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.SignupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "profile": {"$ref": "#/definitions/models.Profile"},
                "user": {"$ref": "#/definitions/identity.Account"}
            }
        },
        "identity.Account": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "models.Friend": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "receiver_id": {"type": "string"},
                "requester_id": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "accepted", "rejected"]}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "session_hours": {"type": "number"},
                "username": {"type": "string"}
            }
        },
        "utils.ErrorPayload": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "rawError": {"type": "string"}
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
	Title:            "lockdin API",
	Description:      "Login, signup and friend requests backed by a hosted identity and data service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
