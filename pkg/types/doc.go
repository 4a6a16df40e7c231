// Package types defines the Collection, Field, Item, and Value entity types
// and the standard errors for the listicle storage system. Mutators on
// Collection validate against the declared fields and refresh timestamps;
// persistence lives in internal/store and internal/markdown.
package types
