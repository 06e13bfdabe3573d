package elements

// Standard atomic weights in dalton. Elements without stable isotopes carry the
// mass number of their longest-lived isotope.
var periodicTable = []Element{
	{"H", "Hydrogen", 1, 1.008},
	{"He", "Helium", 2, 4.0026022},
	{"Li", "Lithium", 3, 6.94},
	{"Be", "Beryllium", 4, 9.01218315},
	{"B", "Boron", 5, 10.81},
	{"C", "Carbon", 6, 12.011},
	{"N", "Nitrogen", 7, 14.007},
	{"O", "Oxygen", 8, 15.999},
	{"F", "Fluorine", 9, 18.9984031636},
	{"Ne", "Neon", 10, 20.17976},
	{"Na", "Sodium", 11, 22.989769282},
	{"Mg", "Magnesium", 12, 24.305},
	{"Al", "Aluminium", 13, 26.98153857},
	{"Si", "Silicon", 14, 28.085},
	{"P", "Phosphorus", 15, 30.9737619985},
	{"S", "Sulfur", 16, 32.06},
	{"Cl", "Chlorine", 17, 35.45},
	{"Ar", "Argon", 18, 39.9481},
	{"K", "Potassium", 19, 39.09831},
	{"Ca", "Calcium", 20, 40.0784},
	{"Sc", "Scandium", 21, 44.9559085},
	{"Ti", "Titanium", 22, 47.8671},
	{"V", "Vanadium", 23, 50.94151},
	{"Cr", "Chromium", 24, 51.99616},
	{"Mn", "Manganese", 25, 54.9380443},
	{"Fe", "Iron", 26, 55.8452},
	{"Co", "Cobalt", 27, 58.9331944},
	{"Ni", "Nickel", 28, 58.69344},
	{"Cu", "Copper", 29, 63.5463},
	{"Zn", "Zinc", 30, 65.382},
	{"Ga", "Gallium", 31, 69.7231},
	{"Ge", "Germanium", 32, 72.6308},
	{"As", "Arsenic", 33, 74.9215956},
	{"Se", "Selenium", 34, 78.9718},
	{"Br", "Bromine", 35, 79.904},
	{"Kr", "Krypton", 36, 83.7982},
	{"Rb", "Rubidium", 37, 85.46783},
	{"Sr", "Strontium", 38, 87.621},
	{"Y", "Yttrium", 39, 88.905842},
	{"Zr", "Zirconium", 40, 91.2242},
	{"Nb", "Niobium", 41, 92.906372},
	{"Mo", "Molybdenum", 42, 95.951},
	{"Tc", "Technetium", 43, 98},
	{"Ru", "Ruthenium", 44, 101.072},
	{"Rh", "Rhodium", 45, 102.905502},
	{"Pd", "Palladium", 46, 106.421},
	{"Ag", "Silver", 47, 107.86822},
	{"Cd", "Cadmium", 48, 112.4144},
	{"In", "Indium", 49, 114.8181},
	{"Sn", "Tin", 50, 118.7107},
	{"Sb", "Antimony", 51, 121.7601},
	{"Te", "Tellurium", 52, 127.603},
	{"I", "Iodine", 53, 126.904473},
	{"Xe", "Xenon", 54, 131.2936},
	{"Cs", "Cesium", 55, 132.905451966},
	{"Ba", "Barium", 56, 137.3277},
	{"La", "Lanthanum", 57, 138.905477},
	{"Ce", "Cerium", 58, 140.1161},
	{"Pr", "Praseodymium", 59, 140.907662},
	{"Nd", "Neodymium", 60, 144.2423},
	{"Pm", "Promethium", 61, 145},
	{"Sm", "Samarium", 62, 150.362},
	{"Eu", "Europium", 63, 151.9641},
	{"Gd", "Gadolinium", 64, 157.253},
	{"Tb", "Terbium", 65, 158.925352},
	{"Dy", "Dysprosium", 66, 162.5001},
	{"Ho", "Holmium", 67, 164.930332},
	{"Er", "Erbium", 68, 167.2593},
	{"Tm", "Thulium", 69, 168.934222},
	{"Yb", "Ytterbium", 70, 173.0451},
	{"Lu", "Lutetium", 71, 174.96681},
	{"Hf", "Hafnium", 72, 178.492},
	{"Ta", "Tantalum", 73, 180.947882},
	{"W", "Tungsten", 74, 183.841},
	{"Re", "Rhenium", 75, 186.2071},
	{"Os", "Osmium", 76, 190.233},
	{"Ir", "Iridium", 77, 192.2173},
	{"Pt", "Platinum", 78, 195.0849},
	{"Au", "Gold", 79, 196.9665695},
	{"Hg", "Mercury", 80, 200.5923},
	{"Tl", "Thallium", 81, 204.38},
	{"Pb", "Lead", 82, 207.21},
	{"Bi", "Bismuth", 83, 208.980401},
	{"Po", "Polonium", 84, 209},
	{"At", "Astatine", 85, 210},
	{"Rn", "Radon", 86, 222},
	{"Fr", "Francium", 87, 223},
	{"Ra", "Radium", 88, 226},
	{"Ac", "Actinium", 89, 227},
	{"Th", "Thorium", 90, 232.03774},
	{"Pa", "Protactinium", 91, 231.035882},
	{"U", "Uranium", 92, 238.028913},
	{"Np", "Neptunium", 93, 237},
	{"Pu", "Plutonium", 94, 244},
	{"Am", "Americium", 95, 243},
	{"Cm", "Curium", 96, 247},
	{"Bk", "Berkelium", 97, 247},
	{"Cf", "Californium", 98, 251},
	{"Es", "Einsteinium", 99, 252},
	{"Fm", "Fermium", 100, 257},
	{"Md", "Mendelevium", 101, 258},
	{"No", "Nobelium", 102, 259},
	{"Lr", "Lawrencium", 103, 266},
	{"Rf", "Rutherfordium", 104, 267},
	{"Db", "Dubnium", 105, 268},
	{"Sg", "Seaborgium", 106, 269},
	{"Bh", "Bohrium", 107, 270},
	{"Hs", "Hassium", 108, 269},
	{"Mt", "Meitnerium", 109, 278},
	{"Ds", "Darmstadtium", 110, 281},
	{"Rg", "Roentgenium", 111, 282},
	{"Cn", "Copernicium", 112, 285},
	{"Nh", "Nihonium", 113, 286},
	{"Fl", "Flerovium", 114, 289},
	{"Mc", "Moscovium", 115, 290},
	{"Lv", "Livermorium", 116, 293},
	{"Ts", "Tennessine", 117, 294},
	{"Og", "Oganesson", 118, 294},
}
