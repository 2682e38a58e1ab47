// Package timing answers the renderer's per-frame question: which block or
// phrase is on screen at a given instant, and at what fade opacity.
//
// A Schedule is derived once per scene and then queried once per rendered
// frame, so lookups keep a sequential cursor and fall back to binary search
// on random access; no query rescans or reallocates the item list.
package timing
