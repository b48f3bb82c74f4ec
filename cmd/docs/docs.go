// Package docs holds the Swagger description of the HTTP API served at /swagger.
// It mirrors the swag annotations on the handlers in internal/handlers, so an added or
// changed annotation needs the matching change here.
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
        "/auth/login": {
            "post": {
                "description": "Checks the administrator password and returns a JWT token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Administrator login",
                "parameters": [
                    {
                        "description": "Login Credentials",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "List categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoriesResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "Add a category",
                "parameters": [
                    {
                        "description": "Category name",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CategoryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoriesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/categories/{name}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Recorded donations keep the old category name",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "Rename a category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Current category name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New name",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CategoryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoriesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "Remove a category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CategoriesResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/formulas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the tithe-of-tithe percentage and remainder threshold applied to new weeks",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "formulas"
                ],
                "summary": "Get the current formulas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Formulas"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Existing weeks keep the formulas they were created with",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "formulas"
                ],
                "summary": "Replace the formulas",
                "parameters": [
                    {
                        "description": "New formulas",
                        "name": "formulas",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateFormulasRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Formulas"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "List members",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Member"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Names are unique ignoring case and surrounding spaces",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Add a member",
                "parameters": [
                    {
                        "description": "Member name",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Member"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/members/{memberID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Get a member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Member ID",
                        "name": "memberID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Member"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Donations already recorded keep the name they were recorded with",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "members"
                ],
                "summary": "Rename a member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Member ID",
                        "name": "memberID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New name",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.MemberRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Member"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "members"
                ],
                "summary": "Remove a member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Member ID",
                        "name": "memberID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/months/{year}/{month}/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sums every week of the month using each week's own formulas. A month without weeks answers empty=true",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "months"
                ],
                "summary": "Monthly aggregates",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthlySummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/months/{year}/{month}/weeks": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "months"
                ],
                "summary": "Weekly records of a month",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.WeeklyRecordResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Newest period first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "List saved reports",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.ReportListItem"
                            }
                        }
                    }
                }
            }
        },
        "/reports/blank": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Blank report form",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/summary": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Recomputes the report totals from the submitted form without storing it",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Live summary of a form",
                "parameters": [
                    {
                        "description": "Form data",
                        "name": "form",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SummarizeReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.FormSummary"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{year}/{month}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Load a saved report",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReportResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "An existing report for the period is only replaced when overwrite is true",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Save a report",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Form data",
                        "name": "report",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SaveMonthlyReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Delete a saved report",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{year}/{month}/prefill": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Writes the derived fields into the submitted form (or a blank one). A month without weeks answers 200 with empty=true",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Prefill a report from the month's weeks",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Form being edited",
                        "name": "form",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/dto.PrefillReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/weeks": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Newest first. With year and month only that month's records are returned, in entry order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "List weekly records",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Month (1-12)",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.WeeklyRecordResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Snapshots the current formulas. Answers 409 with the clashing record ids when the date is already used, unless allowDuplicateDate is set",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Open a weekly record",
                "parameters": [
                    {
                        "description": "Week date and minister",
                        "name": "week",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateWeeklyRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.WeeklyRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.DuplicateDateResponse"
                        }
                    }
                }
            }
        },
        "/weeks/index": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "One line per weekly record with its week number, date range and tithe-bearing total, oldest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Week index",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.WeekIndexEntry"
                            }
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/weeks/{recordID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Get a weekly record",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WeeklyRecordResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the record's date, minister and donations, creating it when the id is new. The formula snapshot is never taken from the request",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Save a weekly record",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Record contents",
                        "name": "week",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SaveWeeklyRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WeeklyRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/dto.DuplicateDateResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Delete a weekly record",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/weeks/{recordID}/donations": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Add a donation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Member, category and amount",
                        "name": "donation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AddDonationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.WeeklyRecordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/weeks/{recordID}/donations/{donationID}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Remove a donation",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Donation ID",
                        "name": "donationID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.WeeklyRecordResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/weeks/{recordID}/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Subtotals per category, tithe of tithe, remainder and minister net for one week",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "weeks"
                ],
                "summary": "Weekly aggregates",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.WeeklySummary"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Donation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "memberName": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0",
                    "description": "Strictly positive"
                }
            }
        },
        "domain.FormSummary": {
            "type": "object",
            "properties": {
                "ingOfrendas": {
                    "type": "string",
                    "example": "0"
                },
                "ingEspeciales": {
                    "type": "string",
                    "example": "0"
                },
                "ingLocales": {
                    "type": "string",
                    "example": "0"
                },
                "totalIngresos": {
                    "type": "string",
                    "example": "0"
                },
                "saldoAnterior": {
                    "type": "string",
                    "example": "0"
                },
                "totalDisponible": {
                    "type": "string",
                    "example": "0"
                },
                "totalManutencion": {
                    "type": "string",
                    "example": "0"
                },
                "egrEspeciales": {
                    "type": "string",
                    "example": "0"
                },
                "egrLocales": {
                    "type": "string",
                    "example": "0"
                },
                "totalSalidas": {
                    "type": "string",
                    "example": "0"
                },
                "remanente": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.Formulas": {
            "type": "object",
            "properties": {
                "diezmoPercentage": {
                    "type": "string",
                    "example": "0",
                    "description": "0-100"
                },
                "remanenteThreshold": {
                    "type": "string",
                    "example": "0",
                    "description": ">= 0"
                }
            }
        },
        "domain.Member": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.MonthlySummary": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                },
                "weekCount": {
                    "type": "integer"
                },
                "minister": {
                    "type": "string"
                },
                "categoryTotals": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string",
                        "example": "0"
                    }
                },
                "diezmoTotal": {
                    "type": "string",
                    "example": "0"
                },
                "ordinariaTotal": {
                    "type": "string",
                    "example": "0"
                },
                "publicServicesTotal": {
                    "type": "string",
                    "example": "0"
                },
                "total": {
                    "type": "string",
                    "example": "0"
                },
                "diezmoDeDiezmo": {
                    "type": "string",
                    "example": "0"
                },
                "gomerMinistro": {
                    "type": "string",
                    "example": "0"
                },
                "remanente": {
                    "type": "string",
                    "example": "0"
                },
                "weeks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.WeeklySummary"
                    }
                }
            }
        },
        "domain.ReportForm": {
            "type": "object",
            "additionalProperties": {
                "type": "string"
            }
        },
        "domain.ReportState": {
            "type": "string",
            "enum": [
                "UNSAVED",
                "PREFILLED",
                "SAVED",
                "LOADED"
            ]
        },
        "domain.WeekIndexEntry": {
            "type": "object",
            "properties": {
                "recordId": {
                    "type": "string"
                },
                "weekNumber": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                },
                "minister": {
                    "type": "string"
                },
                "donationCount": {
                    "type": "integer"
                },
                "total": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.WeeklySummary": {
            "type": "object",
            "properties": {
                "recordId": {
                    "type": "string"
                },
                "empty": {
                    "type": "boolean",
                    "description": "No active week"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "subtotals": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string",
                        "example": "0"
                    }
                },
                "total": {
                    "type": "string",
                    "example": "0",
                    "description": "Diezmo + Ordinaria"
                },
                "diezmoDeDiezmo": {
                    "type": "string",
                    "example": "0"
                },
                "remanente": {
                    "type": "string",
                    "example": "0"
                },
                "gomerMinistro": {
                    "type": "string",
                    "example": "0"
                },
                "roundingDrift": {
                    "type": "string",
                    "example": "0",
                    "description": "diezmoDeDiezmo + gomer - round(total)"
                },
                "memberNames": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "byMember": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "additionalProperties": {
                            "type": "string",
                            "example": "0"
                        }
                    }
                },
                "formulas": {
                    "$ref": "#/definitions/domain.Formulas"
                }
            }
        },
        "dto.AddDonationRequest": {
            "type": "object",
            "required": [
                "memberId",
                "category",
                "amount"
            ],
            "properties": {
                "memberId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "dto.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CategoryRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 80
                }
            }
        },
        "dto.CreateWeeklyRecordRequest": {
            "type": "object",
            "required": [
                "day",
                "month",
                "year",
                "minister"
            ],
            "properties": {
                "day": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 31
                },
                "month": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 12
                },
                "year": {
                    "type": "integer",
                    "minimum": 1900,
                    "maximum": 9999
                },
                "minister": {
                    "type": "string",
                    "maxLength": 120
                },
                "allowDuplicateDate": {
                    "type": "boolean"
                }
            }
        },
        "dto.DuplicateDateResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "sameDateRecordIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": [
                "password"
            ],
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "tokenType": {
                    "type": "string"
                },
                "expiresIn": {
                    "type": "integer"
                }
            }
        },
        "dto.MemberRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 120
                }
            }
        },
        "dto.MonthlySummaryResponse": {
            "type": "object",
            "properties": {
                "empty": {
                    "type": "boolean"
                },
                "summary": {
                    "$ref": "#/definitions/domain.MonthlySummary"
                }
            }
        },
        "dto.PrefillReportRequest": {
            "type": "object",
            "properties": {
                "formData": {
                    "$ref": "#/definitions/domain.ReportForm"
                }
            }
        },
        "dto.ReportListItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "month": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                },
                "monthName": {
                    "type": "string"
                },
                "savedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "savedBy": {
                    "type": "string"
                }
            }
        },
        "dto.ReportResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "month": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                },
                "state": {
                    "$ref": "#/definitions/domain.ReportState"
                },
                "formData": {
                    "$ref": "#/definitions/domain.ReportForm"
                },
                "summary": {
                    "$ref": "#/definitions/domain.FormSummary"
                },
                "monthly": {
                    "$ref": "#/definitions/domain.MonthlySummary"
                },
                "savedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "savedBy": {
                    "type": "string"
                }
            }
        },
        "dto.SaveMonthlyReportRequest": {
            "type": "object",
            "required": [
                "formData"
            ],
            "properties": {
                "formData": {
                    "$ref": "#/definitions/domain.ReportForm"
                },
                "overwrite": {
                    "type": "boolean"
                }
            }
        },
        "dto.SaveWeeklyRecordRequest": {
            "type": "object",
            "required": [
                "day",
                "month",
                "year",
                "minister"
            ],
            "properties": {
                "day": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 31
                },
                "month": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 12
                },
                "year": {
                    "type": "integer",
                    "minimum": 1900,
                    "maximum": 9999
                },
                "minister": {
                    "type": "string",
                    "maxLength": 120
                },
                "donations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Donation"
                    }
                },
                "allowDuplicateDate": {
                    "type": "boolean"
                }
            }
        },
        "dto.SummarizeReportRequest": {
            "type": "object",
            "required": [
                "formData"
            ],
            "properties": {
                "formData": {
                    "$ref": "#/definitions/domain.ReportForm"
                }
            }
        },
        "dto.UpdateFormulasRequest": {
            "type": "object",
            "required": [
                "diezmoPercentage",
                "remanenteThreshold"
            ],
            "properties": {
                "diezmoPercentage": {
                    "type": "string",
                    "example": "0"
                },
                "remanenteThreshold": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "dto.WeeklyRecordResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer",
                    "description": "1-12"
                },
                "year": {
                    "type": "integer"
                },
                "minister": {
                    "type": "string"
                },
                "donations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Donation"
                    }
                },
                "formulas": {
                    "$ref": "#/definitions/domain.Formulas"
                },
                "weekNumber": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Offering Tracker API",
	Description:      "Weekly church offering ledger, monthly aggregation and monthly report forms.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
