// Package templates implements email template management.
//
// Templates carry {{placeholder}} tokens substituted at campaign-send
// time; deleting a template never touches past messages because messages
// store rendered content, not template references.
package templates
