// Package blocks assembles transcript segments or phrases into editorial
// blocks: one or two display lines with a typographic weight and exact
// timing. Block timing is always inherited from the first and last
// contributing source item; a block never invents time outside what it
// absorbed.
package blocks
