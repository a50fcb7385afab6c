// Package schema synthesizes example values from JSON-Schema-like documents.
//
// Schemas arrive from the Kest backend as open JSON documents, so they are
// modeled as Node (a map) with tolerant accessors rather than a closed struct.
// Synthesis picks one illustrative value per node:
//
//  1. example, default, or the first enum value, in that order
//  2. the first branch of oneOf, anyOf or allOf
//  3. a value shaped by type, with string formats and field names mapped to
//     canned literals from a Literals table
//
// Recursion stops below MaxDepth, which also bounds self-referential schemas.
package schema
