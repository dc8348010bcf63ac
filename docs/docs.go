// Package docs registers the OpenAPI document served under /swagger. Keep it in
// step with the handler annotations when routes change.
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
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SessionUser"}}}
            }
        },
        "/api/v1/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "List projects",
                "parameters": [
                    {"type": "string", "description": "Pumping, Field Service or EHV", "name": "category", "in": "query"},
                    {"type": "string", "description": "Active, Critical, Late or Done", "name": "status", "in": "query"},
                    {"type": "string", "description": "Matches utility, substation or order", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Project"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Create project",
                "parameters": [
                    {"description": "Project", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateProjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Project"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/projects/punch-list": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Punch List"],
                "summary": "Projects with an open punch list",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Project"}}}}
            }
        },
        "/api/v1/projects/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Get project",
                "parameters": [{"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Project"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Replace project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"description": "Project", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Project"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Project"}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": true}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Update project fields",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateProjectRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Project"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Delete project",
                "parameters": [{"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/v1/projects/{id}/drafts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Open an edit draft",
                "parameters": [{"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/tracker.Draft"}}}
            }
        },
        "/api/v1/projects/{id}/punch-list/{itemID}/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Punch List"],
                "summary": "Toggle a punch list item",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Punch list item ID", "name": "itemID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Project"}}}
            }
        },
        "/api/v1/projects/{id}/punch-list/{itemID}/attachments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Punch List"],
                "summary": "Attach a photo or video",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Punch list item ID", "name": "itemID", "in": "path", "required": true},
                    {"type": "file", "description": "Image or video, 25MB max", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.PunchListAttachment"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/projects/{id}/punch-list/{itemID}/attachments/{attachmentID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Punch List"],
                "summary": "Remove an attachment",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Punch list item ID", "name": "itemID", "in": "path", "required": true},
                    {"type": "string", "description": "Attachment ID", "name": "attachmentID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/v1/drafts/{draftID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Get a draft",
                "parameters": [{"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tracker.Draft"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Edit draft fields",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateProjectRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tracker.Draft"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Discard a draft",
                "parameters": [{"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/v1/drafts/{draftID}/milestones/{stage}/advance": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "not_started -> started -> stuck -> completed -> not_started",
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Advance a milestone one step",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"type": "string", "description": "design, mat, fab, fat or ship", "name": "stage", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tracker.Draft"}}}
            }
        },
        "/api/v1/drafts/{draftID}/punch-list": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Add a punch list item",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"description": "Item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddPunchItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tracker.Draft"}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/drafts/{draftID}/punch-list/{itemID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Remove a punch list item",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"type": "string", "description": "Punch list item ID", "name": "itemID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tracker.Draft"}}}
            }
        },
        "/api/v1/drafts/{draftID}/punch-list/{itemID}/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Toggle a punch list item in a draft",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true},
                    {"type": "string", "description": "Punch list item ID", "name": "itemID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tracker.Draft"}}}
            }
        },
        "/api/v1/drafts/{draftID}/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Writes the project and logs the net change since the draft was opened.",
                "produces": ["application/json"],
                "tags": ["Drafts"],
                "summary": "Save a draft",
                "parameters": [{"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Project"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DashboardStats"}}}
            }
        },
        "/api/v1/changelog": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Change Log"],
                "summary": "Change log, newest first",
                "parameters": [{"type": "integer", "description": "Only entries for this project", "name": "projectId", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ChangeLogEntry"}}}}
            }
        },
        "/api/v1/calendar/{year}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Twelve month buckets (month 0-11) plus dates that could not be parsed.",
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Landing and FAT dates for a year",
                "parameters": [{"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/calendar.YearView"}}}
            }
        },
        "/api/v1/calendar/{year}/{month}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Landing and FAT dates for one month",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Month, 1-12", "name": "month", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/calendar.MonthView"}}}
            }
        }
    },
    "definitions": {
        "calendar.Date": {
            "type": "object",
            "properties": {
                "day": {"type": "integer"},
                "month": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "calendar.Event": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "date": {"$ref": "#/definitions/calendar.Date"},
                "kind": {"type": "string"},
                "projectId": {"type": "integer"},
                "projectInfo": {"type": "string"},
                "raw": {"type": "string"}
            }
        },
        "calendar.MonthBucket": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/calendar.Event"}},
                "month": {"type": "integer"}
            }
        },
        "calendar.MonthView": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/calendar.Event"}},
                "month": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "calendar.YearView": {
            "type": "object",
            "properties": {
                "months": {"type": "array", "items": {"$ref": "#/definitions/calendar.MonthBucket"}},
                "other": {"type": "array", "items": {"$ref": "#/definitions/calendar.Event"}},
                "year": {"type": "integer"}
            }
        },
        "milestone.Set": {
            "type": "object",
            "properties": {
                "design": {"type": "string"},
                "mat": {"type": "string"},
                "fab": {"type": "string"},
                "fat": {"type": "string"},
                "ship": {"type": "string"}
            }
        },
        "models.AddPunchItemRequest": {
            "type": "object",
            "required": ["description"],
            "properties": {"description": {"type": "string"}}
        },
        "models.ChangeLogEntry": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "changes": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "projectId": {"type": "integer"},
                "projectInfo": {"type": "string"},
                "timestamp": {"type": "string"},
                "userEmail": {"type": "string"}
            }
        },
        "models.CreateProjectRequest": {
            "type": "object",
            "required": ["category", "substation", "utility"],
            "properties": {
                "category": {"type": "string", "enum": ["Pumping", "Field Service", "EHV"]},
                "comments": {"type": "string"},
                "description": {"type": "string"},
                "fatDate": {"type": "string"},
                "landing": {"type": "string"},
                "lead": {"type": "string"},
                "milestones": {"$ref": "#/definitions/milestone.Set"},
                "order": {"type": "string"},
                "progress": {"type": "integer", "maximum": 100, "minimum": 0},
                "status": {"type": "string", "enum": ["Active", "Critical", "Late", "Done"]},
                "substation": {"type": "string"},
                "utility": {"type": "string"}
            }
        },
        "models.DashboardStats": {
            "type": "object",
            "properties": {
                "critical": {"type": "integer"},
                "done": {"type": "integer"},
                "fatReady": {"type": "integer"},
                "punchList": {"type": "integer"},
                "shipReady": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "email": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "models.Project": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "comments": {"type": "string"},
                "dateCreated": {"type": "string"},
                "description": {"type": "string"},
                "fatDate": {"type": "string"},
                "id": {"type": "integer"},
                "landing": {"type": "string"},
                "lead": {"type": "string"},
                "milestones": {"$ref": "#/definitions/milestone.Set"},
                "order": {"type": "string"},
                "progress": {"type": "integer"},
                "punchList": {"type": "array", "items": {"$ref": "#/definitions/models.PunchListItem"}},
                "status": {"type": "string"},
                "substation": {"type": "string"},
                "utility": {"type": "string"}
            }
        },
        "models.PunchListAttachment": {
            "type": "object",
            "properties": {
                "fileName": {"type": "string"},
                "fileSize": {"type": "integer"},
                "id": {"type": "string"},
                "path": {"type": "string"},
                "type": {"type": "string", "enum": ["image", "video"]},
                "uploadedAt": {"type": "string"},
                "uploadedBy": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "models.PunchListItem": {
            "type": "object",
            "properties": {
                "attachments": {"type": "array", "items": {"$ref": "#/definitions/models.PunchListAttachment"}},
                "completed": {"type": "boolean"},
                "description": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "models.SessionUser": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "expires_at": {"type": "integer"}
            }
        },
        "models.UpdateProjectRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "comments": {"type": "string"},
                "description": {"type": "string"},
                "fatDate": {"type": "string"},
                "landing": {"type": "string"},
                "lead": {"type": "string"},
                "order": {"type": "string"},
                "progress": {"type": "integer"},
                "status": {"type": "string"},
                "substation": {"type": "string"},
                "utility": {"type": "string"}
            }
        },
        "tracker.Draft": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "openedAt": {"type": "string"},
                "original": {"$ref": "#/definitions/models.Project"},
                "owner": {"type": "string"},
                "project": {"$ref": "#/definitions/models.Project"}
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
	Title:            "Project Center API",
	Description:      "Milestones, punch lists, change log and schedule for substation projects.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
