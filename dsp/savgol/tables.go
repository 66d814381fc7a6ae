package savgol

// Row layout: {windowSize, []float64{norm, w_0, ..., w_{size-1}}}.

var catalogs = [numFamilies]*Catalog{
	// Savitzky-Golay smoothing, quadratic/cubic fit.
	FamilySmoothQuadCubic: {FamilySmoothQuadCubic, []stencil{
		{5, []float64{35, -3, 12, 17, 12, -3}},
		{7, []float64{21, -2, 3, 6, 7, 6, 3, -2}},
		{9, []float64{231, -21, 14, 39, 54, 59, 54, 39, 14, -21}},
		{11, []float64{429, -36, 9, 44, 69, 84, 89, 84, 69, 44, 9, -36}},
		{13, []float64{143, -11, 0, 9, 16, 21, 24, 25, 24, 21, 16, 9, 0, -11}},
		{15, []float64{1105, -78, -13, 42, 87, 122, 147, 162, 167, 162, 147, 122, 87, 42, -13, -78}},
		{17, []float64{323, -21, -6, 7, 18, 27, 34, 39, 42, 43, 42, 39, 34, 27, 18, 7, -6, -21}},
		{19, []float64{2261, -136, -51, 24, 89, 144, 189, 224, 249, 264, 269, 264, 249, 224, 189, 144, 89, 24, -51, -136}},
		{21, []float64{3059, -171, -76, 9, 84, 149, 204, 249, 284, 309, 324, 329, 324, 309, 284, 249, 204, 149, 84, 9, -76, -171}},
		{23, []float64{805, -42, -21, -2, 15, 30, 43, 54, 63, 70, 75, 78, 79, 78, 75, 70, 63, 54, 43, 30, 15, -2, -21, -42}},
		{25, []float64{5175, -253, -138, -33, 62, 147, 222, 287, 342, 387, 422, 447, 462, 467, 462, 447, 422, 387, 342, 287, 222, 147, 62, -33, -138, -253}},
	}},
	// Savitzky-Golay smoothing, quartic/quintic fit.
	FamilySmoothQuarticQuintic: {FamilySmoothQuarticQuintic, []stencil{
		{7, []float64{231, 5, -30, 75, 131, 75, -30, 5}},
		{9, []float64{429, 15, -55, 30, 135, 179, 135, 30, -55, 15}},
		{11, []float64{429, 18, -45, -10, 60, 120, 143, 120, 60, -10, -45, 18}},
		{13, []float64{2431, 110, -198, -135, 110, 390, 600, 677, 600, 390, 110, -135, -198, 110}},
		{15, []float64{46189, 2145, -2860, -2937, -165, 3755, 7500, 10125, 11063, 10125, 7500, 3755, -165, -2937, -2860, 2145}},
		{17, []float64{4199, 195, -195, -260, -117, 135, 415, 660, 825, 883, 825, 660, 415, 135, -117, -260, -195, 195}},
		{19, []float64{7429, 340, -255, -420, -290, 18, 405, 790, 1110, 1320, 1393, 1320, 1110, 790, 405, 18, -290, -420, -255, 340}},
		{21, []float64{260015, 11628, -6460, -13005, -11220, -3940, 6378, 17655, 28190, 36660, 42120, 44003, 42120, 36660, 28190, 17655, 6378, -3940, -11220, -13005, -6460, 11628}},
		{23, []float64{6555, 285, -114, -285, -285, -165, 30, 261, 495, 705, 870, 975, 1011, 975, 870, 705, 495, 261, 30, -165, -285, -285, -114, 285}},
		{25, []float64{30015, 1265, -345, -1122, -1255, -915, -255, 590, 1503, 2385, 3155, 3750, 4125, 4253, 4125, 3750, 3155, 2385, 1503, 590, -255, -915, -1255, -1122, -345, 1265}},
	}},
	// Savitzky-Golay first derivative, quadratic fit. Weights ascend so a rising
	// ramp yields a positive slope.
	FamilyDeriveQuadFirst: {FamilyDeriveQuadFirst, []stencil{
		{5, []float64{10, -2, -1, 0, 1, 2}},
		{7, []float64{28, -3, -2, -1, 0, 1, 2, 3}},
		{9, []float64{60, -4, -3, -2, -1, 0, 1, 2, 3, 4}},
		{11, []float64{110, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5}},
		{13, []float64{182, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6}},
		{15, []float64{280, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7}},
		{17, []float64{408, -8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{19, []float64{570, -9, -8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{21, []float64{770, -10, -9, -8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{23, []float64{1012, -11, -10, -9, -8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{25, []float64{1300, -12, -11, -10, -9, -8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	}},
	// Binomial weights C(w-1, k), norm 2^(w-1).
	FamilySmoothGaussian: {FamilySmoothGaussian, []stencil{
		{5, []float64{16, 1, 4, 6, 4, 1}},
		{7, []float64{64, 1, 6, 15, 20, 15, 6, 1}},
		{9, []float64{256, 1, 8, 28, 56, 70, 56, 28, 8, 1}},
		{11, []float64{1024, 1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1}},
		{13, []float64{4096, 1, 12, 66, 220, 495, 792, 924, 792, 495, 220, 66, 12, 1}},
		{15, []float64{16384, 1, 14, 91, 364, 1001, 2002, 3003, 3432, 3003, 2002, 1001, 364, 91, 14, 1}},
		{17, []float64{65536, 1, 16, 120, 560, 1820, 4368, 8008, 11440, 12870, 11440, 8008, 4368, 1820, 560, 120, 16, 1}},
		{19, []float64{262144, 1, 18, 153, 816, 3060, 8568, 18564, 31824, 43758, 48620, 43758, 31824, 18564, 8568, 3060, 816, 153, 18, 1}},
		{21, []float64{1048576, 1, 20, 190, 1140, 4845, 15504, 38760, 77520, 125970, 167960, 184756, 167960, 125970, 77520, 38760, 15504, 4845, 1140, 190, 20, 1}},
		{23, []float64{4194304, 1, 22, 231, 1540, 7315, 26334, 74613, 170544, 319770, 497420, 646646, 705432, 646646, 497420, 319770, 170544, 74613, 26334, 7315, 1540, 231, 22, 1}},
		{25, []float64{16777216, 1, 24, 276, 2024, 10626, 42504, 134596, 346104, 735471, 1307504, 1961256, 2496144, 2704156, 2496144, 1961256, 1307504, 735471, 346104, 134596, 42504, 10626, 2024, 276, 24, 1}},
	}},
	// Uniform moving average.
	FamilySmoothAverage: {FamilySmoothAverage, []stencil{
		{5, []float64{5, 1, 1, 1, 1, 1}},
		{7, []float64{7, 1, 1, 1, 1, 1, 1, 1}},
		{9, []float64{9, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{11, []float64{11, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{13, []float64{13, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{15, []float64{15, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{17, []float64{17, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{19, []float64{19, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{21, []float64{21, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{23, []float64{23, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{25, []float64{25, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}},
	// Savitzky-Golay second derivative, quadratic/cubic fit.
	FamilyDeriveQuadSecond: {FamilyDeriveQuadSecond, []stencil{
		{5, []float64{7, 2, -1, -2, -1, 2}},
		{7, []float64{42, 5, 0, -3, -4, -3, 0, 5}},
		{9, []float64{462, 28, 7, -8, -17, -20, -17, -8, 7, 28}},
		{11, []float64{429, 15, 6, -1, -6, -9, -10, -9, -6, -1, 6, 15}},
		{13, []float64{1001, 22, 11, 2, -5, -10, -13, -14, -13, -10, -5, 2, 11, 22}},
		{15, []float64{6188, 91, 52, 19, -8, -29, -44, -53, -56, -53, -44, -29, -8, 19, 52, 91}},
		{17, []float64{3876, 40, 25, 12, 1, -8, -15, -20, -23, -24, -23, -20, -15, -8, 1, 12, 25, 40}},
		{19, []float64{6783, 51, 34, 19, 6, -5, -14, -21, -26, -29, -30, -29, -26, -21, -14, -5, 6, 19, 34, 51}},
		{21, []float64{33649, 190, 133, 82, 37, -2, -35, -62, -83, -98, -107, -110, -107, -98, -83, -62, -35, -2, 37, 82, 133, 190}},
		{23, []float64{17710, 77, 56, 37, 20, 5, -8, -19, -28, -35, -40, -43, -44, -43, -40, -35, -28, -19, -8, 5, 20, 37, 56, 77}},
		{25, []float64{26910, 92, 69, 48, 29, 12, -3, -16, -27, -36, -43, -48, -51, -52, -51, -48, -43, -36, -27, -16, -3, 12, 29, 48, 69, 92}},
	}},
}
