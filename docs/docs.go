// Package docs registers the OpenAPI spec served by the swagger UI mount.
// Regenerate with swag init when handler annotations change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API root info",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/seasons": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seasons"],
                "summary": "List supported seasons",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/seasons/{year}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["seasons"],
                "summary": "Get season table",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"},
                    "504": {"description": "Gateway Timeout"}
                }
            }
        },
        "/api/v1/seasons/{year}/players": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Filter season players",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "string", "name": "teams", "in": "query"},
                    {"type": "string", "name": "positions", "in": "query"},
                    {"type": "number", "name": "min_games", "in": "query"},
                    {"type": "number", "name": "min_points", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/seasons/{year}/top": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Top-N players by column",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "string", "name": "column", "in": "query", "required": true},
                    {"type": "integer", "name": "n", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/seasons/{year}/correlation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Correlation matrix",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/seasons/{year}/groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Grouped means",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "string", "name": "by", "in": "query", "required": true, "enum": ["team", "position"]}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/seasons/{year}/compare": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Compare two players",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "string", "name": "a", "in": "query", "required": true},
                    {"type": "string", "name": "b", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/seasons/{year}/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Column summary statistics",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/seasons/{year}/export.csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["export"],
                "summary": "Export filtered season as CSV",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/cache": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Cache health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Statline API",
	Description:      "NBA player stats explorer: scrapes the per-game table for a season, caches it in-process, and serves filtering, analytics views, and CSV export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
