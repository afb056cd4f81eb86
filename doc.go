// Package numerus converts integers to and from positional numeral
// notations — classical Roman numerals and balanced ternary.
//
// 🚀 What is numerus?
//
//	A small, pure-Go conversion library that brings together:
//		• Roman numerals: subtractive-pair decoding, canonical greedy encoding
//		• Overflow-safe arithmetic: checked variants for every decode
//		• Case-selectable rendering: "MCMXCIV" or "mcmxciv", your call
//		• Balanced ternary: the base-3 notation with digits {-1, 0, +1}
//
// ✨ Why choose numerus?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic overflow behavior, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Honest decoding – any symbol sequence decodes, canonical or not
//
// Everything is organized under two subpackages:
//
//	roman/   — symbol table, parse/decode/encode/render for Roman numerals
//	ternary/ — the same pattern for balanced ternary, strictly simpler
//
// Quick ASCII example:
//
//	    1994  ──encode──▶  M C M X C I V  ──render──▶  "MCMXCIV"
//	    "xiv" ──parse───▶  X I V          ──decode──▶  14
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/numerus/roman
package numerus
