package gazetteer

import "strings"

// Row is one entry of the AfriGIS reference list.
type Row struct {
	Suburb       string
	Town         string
	SubID        string
	SubCode      string
	Postcode     string
	Municipality string
}

// Pair is a (suburb, town) combination excluded from the hierarchy.
type Pair struct {
	Suburb string
	Town   string
}

// Settings control how reference rows become a tree.
type Settings struct {
	// MetroName is the metro city; its in-municipality towns are nested
	// under it. Empty means no metro node.
	MetroName string

	// MetroMunicipality is the local municipality of the metro.
	MetroMunicipality string

	// Exclusions are (suburb, town) pairs whose rows are skipped.
	Exclusions []Pair
}

// Build creates a Hierarchy from reference rows.
//
// Towns are found by name and municipality, because a town name can repeat
// across municipalities. A row whose suburb equals its town is a town-level
// record: its codes are stored on the town node and no child is created.
// Two nodes matching the same (town, municipality) is an input integrity
// error.
func Build(rows []Row, s Settings) (*Hierarchy, error) {
	h := New()

	metroName := NormName(s.MetroName)
	metroMuni := NormName(s.MetroMunicipality)
	var metro *Node
	if metroName != "" {
		metro = h.AddNode(nil, Node{
			Name:         metroName,
			Kind:         Town,
			Municipality: metroMuni,
		})
		h.SetMetro(metro)
	}

	excluded := make(map[Pair]struct{}, len(s.Exclusions))
	for _, v := range s.Exclusions {
		p := Pair{Suburb: NormName(v.Suburb), Town: NormName(v.Town)}
		excluded[p] = struct{}{}
	}

	for i, r := range rows {
		suburb := NormName(r.Suburb)
		town := NormName(r.Town)
		muni := NormName(r.Municipality)
		postcode := strings.TrimSpace(r.Postcode)
		if town == "" {
			continue
		}
		if suburb == "" {
			suburb = town
		}
		if _, ok := excluded[Pair{Suburb: suburb, Town: town}]; ok {
			continue
		}

		var townNode *Node
		if metro != nil && town == metroName {
			townNode = metro
		} else {
			matches := h.townCandidates(town, muni)
			switch len(matches) {
			case 0:
				var parent *Node
				if metro != nil && muni == metroMuni {
					parent = metro
				}
				townNode = h.AddNode(parent, Node{
					Name:         town,
					Kind:         Town,
					Postcode:     postcode,
					Municipality: muni,
				})
			case 1:
				townNode = matches[0]
			default:
				return nil, DuplicateTownError(town, muni, i+1, matches)
			}
		}

		if suburb == town {
			// The metro node never carries reference codes.
			if townNode == metro {
				continue
			}
			if id := strings.TrimSpace(r.SubID); id != "" {
				townNode.SubID = id
				townNode.SubCode = strings.TrimSpace(r.SubCode)
			}
			if townNode.Postcode == "" {
				townNode.Postcode = postcode
			}
			continue
		}

		h.AddNode(townNode, Node{
			Name:         suburb,
			Kind:         Suburb,
			Postcode:     postcode,
			Municipality: muni,
			SubID:        strings.TrimSpace(r.SubID),
			SubCode:      strings.TrimSpace(r.SubCode),
		})
	}
	return h, nil
}

// townCandidates returns non-root nodes with the given name that belong to
// the municipality. Suburbs are included: a suburb that is also listed as a
// town in its municipality becomes the parent of that town's suburbs.
func (h *Hierarchy) townCandidates(name, muni string) []*Node {
	var res []*Node
	for _, n := range h.FindNodeByName(name) {
		if n.Municipality == muni && n.ID != h.metro {
			res = append(res, n)
		}
	}
	return res
}
