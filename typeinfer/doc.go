// Package typeinfer implements the optional type enricher: given a
// Checker, it classifies dependency return types as Result-like
// (asyncResult, result, promiseResult, or plain) and propagates the
// extracted ok/error types onto the steps that consume each dependency.
//
// Enrichment degrades gracefully when no Checker is supplied, or when the
// Checker cannot answer for a given span: the affected type fields simply
// stay unset. Enrich never aborts a walk and never mutates anything but
// type fields.
package typeinfer
