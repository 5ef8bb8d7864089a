package known

// builtinEntries mirrors resources/known_entities.yaml so the process works
// without the resource file. Large French groups only; anything else goes
// through search or the AI fallback.
var builtinEntries = []Entry{
	{Name: "BNP Paribas", Siren: "662042449"},
	{Name: "Société Générale", Siren: "552120222"},
	{Name: "Crédit Agricole", Siren: "784608416"},
	{Name: "AXA", Siren: "572093920"},
	{Name: "TotalEnergies", Siren: "542051180"},
	{Name: "LVMH Moët Hennessy Louis Vuitton", Siren: "775670417"},
	{Name: "L'Oréal", Siren: "632012100"},
	{Name: "Carrefour", Siren: "652014051"},
	{Name: "Danone", Siren: "552032534"},
	{Name: "Renault", Siren: "441639465"},
	{Name: "Airbus", Siren: "383474814"},
	{Name: "Michelin", Siren: "855200507"},
	{Name: "Saint-Gobain", Siren: "542039532"},
	{Name: "Air Liquide", Siren: "552096281"},
	{Name: "Orange", Siren: "380129866"},
	{Name: "Bouygues", Siren: "572015246"},
	{Name: "Vinci", Siren: "552037806"},
	{Name: "Veolia", Siren: "403210032"},
	{Name: "Engie", Siren: "542107651"},
	{Name: "Sanofi", Siren: "395030844"},
	{Name: "Kering", Siren: "552075020"},
	{Name: "Hermès International", Siren: "572076396"},
	{Name: "Publicis Groupe", Siren: "542080601"},
	{Name: "Capgemini", Siren: "330703844"},
	{Name: "Dassault Systèmes", Siren: "322306440"},
	{Name: "Thales", Siren: "552059024"},
	{Name: "Safran", Siren: "562082909"},
	{Name: "Alstom", Siren: "389058447"},
	{Name: "EDF", Siren: "552081317"},
	{Name: "La Poste", Siren: "356000000"},
	{Name: "SNCF", Siren: "552049447"},
	{Name: "Fnac Darty", Siren: "055800296"},
	{Name: "Decathlon", Siren: "306138900"},
	{Name: "Leroy Merlin", Siren: "384560942"},
	{Name: "Auchan", Siren: "410409460"},
}
