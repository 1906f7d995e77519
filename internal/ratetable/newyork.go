package ratetable

// NewYork returns the production New York State rate table: the 4% state
// rate, per-county and per-city local rates and the 0.375% MCTD surcharge
// applied to the twelve metro-transit counties.
func NewYork() *Table {
	return &Table{
		State: map[string]float64{
			"New York State": 0.04,
		},
		County: map[string]float64{
			"Albany":      0.04,
			"Allegany":    0.045,
			"Broome":      0.04,
			"Cattaraugus": 0.04,
			"Cayuga":      0.04,
			"Chautauqua":  0.04,
			"Chemung":     0.04,
			"Chenango":    0.04,
			"Clinton":     0.04,
			"Columbia":    0.04,
			"Cortland":    0.04,
			"Delaware":    0.04,
			"Dutchess":    0.0375,
			"Erie":        0.0475,
			"Essex":       0.04,
			"Franklin":    0.04,
			"Fulton":      0.04,
			"Genesee":     0.04,
			"Greene":      0.04,
			"Hamilton":    0.04,
			"Herkimer":    0.0425,
			"Jefferson":   0.04,
			"Lewis":       0.04,
			"Livingston":  0.04,
			"Madison":     0.04,
			"Monroe":      0.04,
			"Montgomery":  0.04,
			"Nassau":      0.0425,
			"Niagara":     0.04,
			"Oneida":      0.0475,
			"Onondaga":    0.04,
			"Ontario":     0.035,
			"Orange":      0.0375,
			"Orleans":     0.04,
			"Oswego":      0.04,
			"Otsego":      0.04,
			"Putnam":      0.04,
			"Rensselaer":  0.04,
			"Rockland":    0.04,
			"St Lawrence": 0.04,
			"Saratoga":    0.03,
			"Schenectady": 0.04,
			"Schoharie":   0.04,
			"Schuyler":    0.04,
			"Seneca":      0.04,
			"Steuben":     0.04,
			"Suffolk":     0.0425,
			"Sullivan":    0.04,
			"Tioga":       0.04,
			"Tompkins":    0.04,
			"Ulster":      0.04,
			"Warren":      0.03,
			"Washington":  0.03,
			"Wayne":       0.04,
			"Westchester": 0.04,
			"Wyoming":     0.04,
			"Yates":       0.04,
			"New York":    0.045,
			"Bronx":       0.045,
			"Kings":       0.045,
			"Queens":      0.045,
			"Richmond":    0.045,
		},
		City: map[string]float64{
			"Yonkers":       0.045,
			"Mount Vernon":  0.045,
			"New Rochelle":  0.045,
			"White Plains":  0.045,
			"Oswego":        0.04,
			"Rome":          0.0475,
			"Utica":         0.0475,
		},
		Special: map[string]float64{
			"MCTD": 0.00375,
		},
		MCTDCounties: []string{
			"New York",
			"Bronx",
			"Kings",
			"Queens",
			"Richmond",
			"Dutchess",
			"Nassau",
			"Orange",
			"Putnam",
			"Rockland",
			"Suffolk",
			"Westchester",
		},
		StateLabel:           "New York State",
		StateRate:            0.04,
		SpecialDistrictLabel: "MCTD",
		SpecialDistrictRate:  0.00375,
	}
}
