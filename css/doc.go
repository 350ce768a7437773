// Package css turns stylesheet text into computed style records.
//
// Parser tokenizes with github.com/tdewolff/parse/v2/css and keeps the
// subset a reader understands: element, class and descendant selectors,
// ::before and ::after, @media, @import and @font-face. ParseLength and the
// Decode* functions turn single values into style lengths and domain
// variants. Converter applies a rule's declarations to a style.Record,
// expanding the margin, padding, border, list-style and background
// shorthands.
package css
