// Package token defines the lexical token model shared by the lexer,
// the rewrite rules and the emitter. Unlike compilers that attach
// whitespace and comments to neighboring tokens as trivia, the minifier
// keeps them as first-class tokens: the rewrite rules delete and collapse
// them, so they must be addressable in the stream.
package token
