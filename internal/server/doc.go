// Package server exposes cloak and decloak over a local HTTP API built on
// gin, so editors and other tools can use codecloak without shelling out.
//
// Routes:
//
//	GET    /health
//	POST   /v1/cloak            {text, languageId, stringFormat?, preserveFrameworkHooks?}
//	POST   /v1/decloak          {text, context?}
//	GET    /v1/context
//	DELETE /v1/context
//	GET    /v1/context/stats
//	GET    /v1/keywords/:lang
//	POST   /v1/keywords/:lang   {name}
//
// Errors are returned as {"error": "..."}: 400 for bad input, 404 when no
// cloak context exists, 500 otherwise.
package server
