package sbom

// Deduplicate merges packages sharing a (name, version) key. The output
// keeps the first-seen order of distinct keys; each merged package
// takes the purl and source of its first-seen member and the union of
// all members' licenses, first-seen order preserved. License identity
// for the union is the name alone, so two entries differing only in URL
// collapse to the first.
func Deduplicate(packages []Package) []Package {
	merged := make([]Package, 0, len(packages))
	index := make(map[PackageKey]int, len(packages))
	seenNames := make(map[PackageKey]map[string]bool, len(packages))

	for _, pkg := range packages {
		key := pkg.Key()
		i, ok := index[key]
		if !ok {
			i = len(merged)
			index[key] = i
			seenNames[key] = make(map[string]bool)
			merged = append(merged, Package{
				Name:    pkg.Name,
				Version: pkg.Version,
				Purl:    pkg.Purl,
				Source:  pkg.Source,
			})
		}

		for _, lic := range pkg.Licenses {
			if seenNames[key][lic.Name] {
				continue
			}
			seenNames[key][lic.Name] = true
			merged[i].Licenses = append(merged[i].Licenses, lic)
		}
	}

	return merged
}
