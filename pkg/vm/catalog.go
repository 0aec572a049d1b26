package vm

// Catalog is the immutable, ordered instruction catalog. It is grouped
// by encoding format for readability but the pipeline treats it
// uniformly: decode walks the slice in order and uses the first matching
// definition. Masks are constructed so at most one entry matches any
// legal encoding in this subset of RV32I.
var Catalog = func() []Definition {
	var all []Definition
	all = append(all, rtypeCatalog...)
	all = append(all, itypeCatalog...)
	all = append(all, loadCatalog...)
	all = append(all, storeCatalog...)
	all = append(all, branchCatalog...)
	all = append(all, utypeCatalog...)
	all = append(all, jtypeCatalog...)
	return all
}()
