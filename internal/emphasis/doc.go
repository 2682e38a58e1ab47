// Package emphasis marks the few moments in a block sequence that deserve
// extra visual treatment: at most one hard emphasis near the middle of the
// video and up to two supporting soft emphases. Every block receives an
// assignment; most are none.
package emphasis
