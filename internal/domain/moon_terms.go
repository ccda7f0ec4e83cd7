package domain

// lunarLongitudeDistanceTerms holds the periodic terms for the Moon's
// longitude (Σl, sine amplitudes in 1e-6 degrees) and distance (Σr, cosine
// amplitudes in metres). Columns: D, M, M', F multipliers.
var lunarLongitudeDistanceTerms = [...]periodicTerm{
	{d: 0, m: 0, mp: 1, f: 0, sin: 6288774, cos: -20905355},
	{d: 2, m: 0, mp: -1, f: 0, sin: 1274027, cos: -3699111},
	{d: 2, m: 0, mp: 0, f: 0, sin: 658314, cos: -2955968},
	{d: 0, m: 0, mp: 2, f: 0, sin: 213618, cos: -569925},
	{d: 0, m: 1, mp: 0, f: 0, sin: -185116, cos: 48888},
	{d: 0, m: 0, mp: 0, f: 2, sin: -114332, cos: -3149},
	{d: 2, m: 0, mp: -2, f: 0, sin: 58793, cos: 246158},
	{d: 2, m: -1, mp: -1, f: 0, sin: 57066, cos: -152138},
	{d: 2, m: 0, mp: 1, f: 0, sin: 53322, cos: -170733},
	{d: 2, m: -1, mp: 0, f: 0, sin: 45758, cos: -204586},
	{d: 0, m: 1, mp: -1, f: 0, sin: -40923, cos: -129620},
	{d: 1, m: 0, mp: 0, f: 0, sin: -34720, cos: 108743},
	{d: 0, m: 1, mp: 1, f: 0, sin: -30383, cos: 104755},
	{d: 2, m: 0, mp: 0, f: -2, sin: 15327, cos: 10321},
	{d: 0, m: 0, mp: 1, f: 2, sin: -12528, cos: 0},
	{d: 0, m: 0, mp: 1, f: -2, sin: 10980, cos: 79661},
	{d: 4, m: 0, mp: -1, f: 0, sin: 10675, cos: -34782},
	{d: 0, m: 0, mp: 3, f: 0, sin: 10034, cos: -23210},
	{d: 4, m: 0, mp: -2, f: 0, sin: 8548, cos: -21636},
	{d: 2, m: 1, mp: -1, f: 0, sin: -7888, cos: 24208},
	{d: 2, m: 1, mp: 0, f: 0, sin: -6766, cos: 30824},
	{d: 1, m: 0, mp: -1, f: 0, sin: -5163, cos: -8379},
	{d: 1, m: 1, mp: 0, f: 0, sin: 4987, cos: -16675},
	{d: 2, m: -1, mp: 1, f: 0, sin: 4036, cos: -12831},
	{d: 2, m: 0, mp: 2, f: 0, sin: 3994, cos: -10445},
	{d: 4, m: 0, mp: 0, f: 0, sin: 3861, cos: -11650},
	{d: 2, m: 0, mp: -3, f: 0, sin: 3665, cos: 14403},
	{d: 0, m: 1, mp: -2, f: 0, sin: -2689, cos: -7003},
	{d: 2, m: 0, mp: -1, f: 2, sin: -2602, cos: 0},
	{d: 2, m: -1, mp: -2, f: 0, sin: 2390, cos: 10056},
	{d: 1, m: 0, mp: 1, f: 0, sin: -2348, cos: 6322},
	{d: 2, m: -2, mp: 0, f: 0, sin: 2236, cos: -9884},
	{d: 0, m: 1, mp: 2, f: 0, sin: -2120, cos: 5751},
	{d: 0, m: 2, mp: 0, f: 0, sin: -2069, cos: 0},
	{d: 2, m: -2, mp: -1, f: 0, sin: 2048, cos: -4950},
	{d: 2, m: 0, mp: 1, f: -2, sin: -1773, cos: 4130},
	{d: 2, m: 0, mp: 0, f: 2, sin: -1595, cos: 0},
	{d: 4, m: -1, mp: -1, f: 0, sin: 1215, cos: -3958},
	{d: 0, m: 0, mp: 2, f: 2, sin: -1110, cos: 0},
	{d: 3, m: 0, mp: -1, f: 0, sin: -892, cos: 3258},
	{d: 2, m: 1, mp: 1, f: 0, sin: -810, cos: 2616},
	{d: 4, m: -1, mp: -2, f: 0, sin: 759, cos: -1897},
	{d: 0, m: 2, mp: -1, f: 0, sin: -713, cos: -2117},
	{d: 2, m: 2, mp: -1, f: 0, sin: -700, cos: 2354},
	{d: 2, m: 1, mp: -2, f: 0, sin: 691, cos: 0},
	{d: 2, m: -1, mp: 0, f: -2, sin: 596, cos: 0},
	{d: 4, m: 0, mp: 1, f: 0, sin: 549, cos: -1423},
	{d: 0, m: 0, mp: 4, f: 0, sin: 537, cos: -1117},
	{d: 4, m: -1, mp: 0, f: 0, sin: 520, cos: -1571},
	{d: 1, m: 0, mp: -2, f: 0, sin: -487, cos: -1739},
	{d: 2, m: 1, mp: 0, f: -2, sin: -399, cos: 0},
	{d: 0, m: 0, mp: 2, f: -2, sin: -381, cos: -4421},
	{d: 1, m: 1, mp: 1, f: 0, sin: 351, cos: 0},
	{d: 3, m: 0, mp: -2, f: 0, sin: -340, cos: 0},
	{d: 4, m: 0, mp: -3, f: 0, sin: 330, cos: 0},
	{d: 2, m: -1, mp: 2, f: 0, sin: 327, cos: 0},
	{d: 0, m: 2, mp: 1, f: 0, sin: -323, cos: 1165},
	{d: 1, m: 1, mp: -1, f: 0, sin: 299, cos: 0},
	{d: 2, m: 0, mp: 3, f: 0, sin: 294, cos: 0},
	{d: 2, m: 0, mp: -1, f: -2, sin: 0, cos: 8752},
}

// lunarLatitudeTerms holds the periodic terms for the Moon's latitude (Σb,
// sine amplitudes in 1e-6 degrees).
var lunarLatitudeTerms = [...]periodicTerm{
	{d: 0, m: 0, mp: 0, f: 1, sin: 5128122},
	{d: 0, m: 0, mp: 1, f: 1, sin: 280602},
	{d: 0, m: 0, mp: 1, f: -1, sin: 277693},
	{d: 2, m: 0, mp: 0, f: -1, sin: 173237},
	{d: 2, m: 0, mp: -1, f: 1, sin: 55413},
	{d: 2, m: 0, mp: -1, f: -1, sin: 46271},
	{d: 2, m: 0, mp: 0, f: 1, sin: 32573},
	{d: 0, m: 0, mp: 2, f: 1, sin: 17198},
	{d: 2, m: 0, mp: 1, f: -1, sin: 9266},
	{d: 0, m: 0, mp: 2, f: -1, sin: 8822},
	{d: 2, m: -1, mp: 0, f: -1, sin: 8216},
	{d: 2, m: 0, mp: -2, f: -1, sin: 4324},
	{d: 2, m: 0, mp: 1, f: 1, sin: 4200},
	{d: 2, m: 1, mp: 0, f: -1, sin: -3359},
	{d: 2, m: -1, mp: -1, f: 1, sin: 2463},
	{d: 2, m: -1, mp: 0, f: 1, sin: 2211},
	{d: 2, m: -1, mp: -1, f: -1, sin: 2065},
	{d: 0, m: 1, mp: -1, f: -1, sin: -1870},
	{d: 4, m: 0, mp: -1, f: -1, sin: 1828},
	{d: 0, m: 1, mp: 0, f: 1, sin: -1794},
	{d: 0, m: 0, mp: 0, f: 3, sin: -1749},
	{d: 0, m: 1, mp: -1, f: 1, sin: -1565},
	{d: 1, m: 0, mp: 0, f: 1, sin: -1491},
	{d: 0, m: 1, mp: 1, f: 1, sin: -1475},
	{d: 0, m: 1, mp: 1, f: -1, sin: -1410},
	{d: 0, m: 1, mp: 0, f: -1, sin: -1344},
	{d: 1, m: 0, mp: 0, f: -1, sin: -1335},
	{d: 0, m: 0, mp: 3, f: 1, sin: 1107},
	{d: 4, m: 0, mp: 0, f: -1, sin: 1021},
	{d: 4, m: 0, mp: -1, f: 1, sin: 833},
	{d: 0, m: 0, mp: 1, f: -3, sin: 777},
	{d: 4, m: 0, mp: -2, f: 1, sin: 671},
	{d: 2, m: 0, mp: 0, f: -3, sin: 607},
	{d: 2, m: 0, mp: 2, f: -1, sin: 596},
	{d: 2, m: -1, mp: 1, f: -1, sin: 491},
	{d: 2, m: 0, mp: -2, f: 1, sin: -451},
	{d: 0, m: 0, mp: 3, f: -1, sin: 439},
	{d: 2, m: 0, mp: 2, f: 1, sin: 422},
	{d: 2, m: 0, mp: -3, f: -1, sin: 421},
	{d: 2, m: 1, mp: -1, f: 1, sin: -366},
	{d: 2, m: 1, mp: 0, f: 1, sin: -351},
	{d: 4, m: 0, mp: 0, f: 1, sin: 331},
	{d: 2, m: -1, mp: 1, f: 1, sin: 315},
	{d: 2, m: -2, mp: 0, f: -1, sin: 302},
	{d: 0, m: 0, mp: 1, f: 3, sin: -283},
	{d: 2, m: 1, mp: 1, f: -1, sin: -229},
	{d: 1, m: 1, mp: 0, f: -1, sin: 223},
	{d: 1, m: 1, mp: 0, f: 1, sin: 223},
	{d: 0, m: 1, mp: -2, f: -1, sin: -220},
	{d: 2, m: 1, mp: -1, f: -1, sin: -220},
	{d: 1, m: 0, mp: 1, f: 1, sin: -185},
	{d: 2, m: -1, mp: -2, f: -1, sin: 181},
	{d: 0, m: 1, mp: 2, f: 1, sin: -177},
	{d: 4, m: 0, mp: -2, f: -1, sin: 176},
	{d: 4, m: -1, mp: -1, f: -1, sin: 166},
	{d: 1, m: 0, mp: 1, f: -1, sin: -164},
	{d: 4, m: 0, mp: 1, f: -1, sin: 132},
	{d: 1, m: 0, mp: -1, f: -1, sin: -119},
	{d: 4, m: -1, mp: 0, f: -1, sin: 115},
	{d: 2, m: -2, mp: 0, f: 1, sin: 107},
}
