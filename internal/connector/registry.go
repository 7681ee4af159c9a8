package connector

// Builtin profiles for the supported producers. Rule order inside each table
// is part of the contract: overlapping patterns resolve to the earliest rule.
var Builtins = []*Profile{
	{
		Name:       "tekla",
		Extensions: []string{".csv"},
		CreateTable: CategoryTable{
			{Pattern: "ExportIFCTeklaAPI", Category: "IFC"},
			{Pattern: "CreateMeshGeometry", Category: "Mesh"},
			{Pattern: "CreateExchangeElementForPrimitive", Category: "Primitives"},
		},
		ReadTable: CategoryTable{
			{Pattern: "LoadBrepItemInTekla", Category: "IFC"},
			{Pattern: "LoadMeshInTekla", Category: "Mesh"},
			{Pattern: "LoadPrimitivesInTekla", Category: "Primitives"},
		},
		CreateTimeOp:  "TotalTimeToCreateExchange",
		ReadTimeOp:    "TotalExchangeReadTime",
		CreateColumns: []string{"Mesh", "IFC", "Primitives"},
		ReadColumns:   []string{"Mesh", "IFC", "Primitives"},
	},
	{
		Name:       "rhino",
		Extensions: []string{".csv"},
		CreateTable: CategoryTable{
			{Pattern: "CreateBrepElement:CreateBrepGeometry", Category: "Brep"},
			{Pattern: "CreateMeshElement:CreateMeshGeometry", Category: "Mesh"},
			{Pattern: "CreatePrimitiveElement:CreatePrimitiveGeometry", Category: "Primitive"},
			// Older Rhino builds emit the bare geometry operations.
			{Pattern: "CreateMeshGeometry", Category: "Mesh"},
			{Pattern: "CreateBrepGeometry", Category: "Brep"},
		},
		ReadTable: CategoryTable{
			{Pattern: "LoadMeshInRhino", Category: "Mesh"},
			{Pattern: "LoadBrepInRhino", Category: "Brep"},
		},
		CreateTimeOp:  "UpdateExchangeAsync:TotalCreationTime",
		ReadTimeOp:    "TotalExchangeReadTime",
		CreateColumns: []string{"Mesh", "Brep", "Primitive"},
		ReadColumns:   []string{"Mesh", "Brep", "Primitive"},
	},
	{
		Name:        "navisworks",
		Extensions:  []string{".csv"},
		SplitPhases: true,
		// Navisworks prefixes its time operations with the async method name,
		// and some builds drop the prefix.
		LooseTimeMatch: true,
		CreateTable: CategoryTable{
			{Pattern: "ExportMeshCount", Category: "Mesh_Export"},
			{Pattern: "ExportLineCount", Category: "Line_Export"},
			{Pattern: "ExportPointCount", Category: "Point_Export"},
		},
		ReadTable: CategoryTable{
			{Pattern: "ReadBrepCount", Category: "Brep_Read"},
			{Pattern: "ReadMeshCount", Category: "Mesh_Read"},
			{Pattern: "ReadPrimitiveCount", Category: "Primitive_Read"},
		},
		CreateTimeOp:  "UpdateExchangeAsync:TotalTimeToCreateExchange",
		ReadTimeOp:    "GetLatestExchangeDataAsync:TotalExchangeReadTime",
		CreateColumns: []string{"Mesh_Export", "Line_Export", "Point_Export"},
		ReadColumns:   []string{"Brep_Read", "Mesh_Read", "Primitive_Read"},
	},
	{
		Name:       "tekla-json",
		Extensions: []string{".json"},
		Tree:       true,
		CreateTable: CategoryTable{
			{Pattern: "ExportIFCTeklaAPI", Category: "IFC"},
			{Pattern: "CreateMeshGeometry", Category: "Mesh"},
			{Pattern: "CreateExchangeElementForPrimitive", Category: "Primitives"},
		},
		ReadTable: CategoryTable{
			{Pattern: "LoadBrepItemInTekla", Category: "IFC"},
			{Pattern: "LoadMeshInTekla", Category: "Mesh"},
			{Pattern: "LoadPrimitivesInTekla", Category: "Primitives"},
		},
		CreateTimeOp:  "TotalTimeToCreateExchange",
		ReadTimeOp:    "TotalExchangeReadTime",
		CreateColumns: []string{"Mesh", "IFC", "Primitives"},
		ReadColumns:   []string{"Mesh", "IFC", "Primitives"},
		CountKinds: map[string]string{
			"BRep":     "IFC",
			"CurveSet": "Primitives",
		},
	},
}

// ByName returns the builtin profile for the given name, or ok=false.
func ByName(name string) (*Profile, bool) {
	for _, p := range Builtins {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Names returns the builtin profile names in registration order.
func Names() []string {
	names := make([]string, len(Builtins))
	for i, p := range Builtins {
		names[i] = p.Name
	}
	return names
}
