package wordtables

// Builtin returns a registry preloaded with the bundled starter tables.
// Production deployments extend or replace these via WORD_TABLE_DIR or the
// xlsx importer; the bundled set keeps the app usable out of the box.
func Builtin() *Registry {
	r := NewRegistry()
	r.Add("en", englishTable)
	r.Add("es", spanishTable)
	r.Add("fr", frenchTable)
	r.Add("de", germanTable)
	return r
}

var englishTable = Table{
	1:  {Word: "apple", Category: "food", Difficulty: "beginner", Pronunciation: "AP-uhl", Example: "I eat an apple every morning."},
	2:  {Word: "bread", Category: "food", Difficulty: "beginner", Example: "This bread is still warm."},
	3:  {Word: "water", Category: "food", Difficulty: "beginner", Example: "Can I have a glass of water?"},
	4:  {Word: "milk", Category: "food", Difficulty: "beginner", Example: "The milk is in the fridge."},
	5:  {Word: "cheese", Category: "food", Difficulty: "beginner", Example: "She bought cheese at the market."},
	6:  {Word: "breakfast", Category: "food", Difficulty: "intermediate", Example: "We had breakfast at eight."},
	7:  {Word: "vegetable", Category: "food", Difficulty: "intermediate", Example: "Every vegetable here is fresh."},
	8:  {Word: "seasoning", Category: "food", Difficulty: "advanced", Example: "The soup needs more seasoning."},
	9:  {Word: "dog", Category: "animals", Difficulty: "beginner", Example: "The dog sleeps by the door."},
	10: {Word: "cat", Category: "animals", Difficulty: "beginner", Example: "A cat sat on the wall."},
	11: {Word: "bird", Category: "animals", Difficulty: "beginner", Example: "The bird sings at dawn."},
	12: {Word: "fish", Category: "animals", Difficulty: "beginner", Example: "The fish swims in circles."},
	13: {Word: "rabbit", Category: "animals", Difficulty: "intermediate", Example: "A rabbit crossed the garden."},
	14: {Word: "horse", Category: "animals", Difficulty: "intermediate", Example: "The horse jumped the fence."},
	15: {Word: "train", Category: "travel", Difficulty: "beginner", Example: "The train leaves at noon."},
	16: {Word: "ticket", Category: "travel", Difficulty: "beginner", Example: "I lost my ticket."},
	17: {Word: "hotel", Category: "travel", Difficulty: "beginner", Example: "Our hotel is near the station."},
	18: {Word: "airport", Category: "travel", Difficulty: "intermediate", Example: "The airport was crowded."},
	19: {Word: "luggage", Category: "travel", Difficulty: "intermediate", Example: "My luggage is too heavy."},
	20: {Word: "itinerary", Category: "travel", Difficulty: "advanced", Example: "The itinerary covers three cities."},
	21: {Word: "queue", Category: "travel", Difficulty: "advanced", Example: "We waited in the queue for an hour."},
}

var spanishTable = Table{
	1:  {Word: "manzana", Category: "food", Difficulty: "beginner", Example: "Como una manzana cada mañana."},
	2:  {Word: "pan", Category: "food", Difficulty: "beginner", Example: "Este pan todavía está caliente."},
	3:  {Word: "agua", Category: "food", Difficulty: "beginner", Example: "¿Me das un vaso de agua?"},
	4:  {Word: "leche", Category: "food", Difficulty: "beginner", Example: "La leche está en la nevera."},
	5:  {Word: "queso", Category: "food", Difficulty: "beginner", Example: "Compró queso en el mercado."},
	6:  {Word: "desayuno", Category: "food", Difficulty: "intermediate", Example: "Desayunamos a las ocho."},
	7:  {Word: "verdura", Category: "food", Difficulty: "intermediate", Example: "Toda la verdura aquí es fresca."},
	8:  {Word: "condimento", Category: "food", Difficulty: "advanced", Example: "La sopa necesita más condimento."},
	9:  {Word: "perro", Category: "animals", Difficulty: "beginner", Example: "El perro duerme junto a la puerta."},
	10: {Word: "gato", Category: "animals", Difficulty: "beginner", Example: "Un gato se sentó en el muro."},
	11: {Word: "pájaro", Category: "animals", Difficulty: "beginner", Example: "El pájaro canta al amanecer."},
	12: {Word: "pez", Category: "animals", Difficulty: "beginner", Example: "El pez nada en círculos."},
	13: {Word: "conejo", Category: "animals", Difficulty: "intermediate", Example: "Un conejo cruzó el jardín."},
	14: {Word: "caballo", Category: "animals", Difficulty: "intermediate", Example: "El caballo saltó la cerca."},
	15: {Word: "tren", Category: "travel", Difficulty: "beginner", Example: "El tren sale al mediodía."},
	16: {Word: "billete", Category: "travel", Difficulty: "beginner", Example: "Perdí mi billete."},
	17: {Word: "hotel", Category: "travel", Difficulty: "beginner", Example: "Nuestro hotel está cerca de la estación."},
	18: {Word: "aeropuerto", Category: "travel", Difficulty: "intermediate", Example: "El aeropuerto estaba lleno."},
	19: {Word: "equipaje", Category: "travel", Difficulty: "intermediate", Example: "Mi equipaje pesa demasiado."},
	20: {Word: "itinerario", Category: "travel", Difficulty: "advanced", Example: "El itinerario incluye tres ciudades."},
	22: {Word: "sobremesa", Category: "food", Difficulty: "advanced", Example: "La sobremesa duró dos horas."},
}

var frenchTable = Table{
	1:  {Word: "pomme", Category: "food", Difficulty: "beginner", Example: "Je mange une pomme chaque matin."},
	2:  {Word: "pain", Category: "food", Difficulty: "beginner", Example: "Ce pain est encore chaud."},
	3:  {Word: "eau", Category: "food", Difficulty: "beginner", Example: "Puis-je avoir un verre d'eau ?"},
	4:  {Word: "lait", Category: "food", Difficulty: "beginner", Example: "Le lait est dans le frigo."},
	5:  {Word: "fromage", Category: "food", Difficulty: "beginner", Example: "Elle a acheté du fromage au marché."},
	6:  {Word: "petit-déjeuner", Category: "food", Difficulty: "intermediate", Example: "Nous avons pris le petit-déjeuner à huit heures."},
	7:  {Word: "légume", Category: "food", Difficulty: "intermediate", Example: "Chaque légume ici est frais."},
	8:  {Word: "assaisonnement", Category: "food", Difficulty: "advanced", Example: "La soupe manque d'assaisonnement."},
	9:  {Word: "chien", Category: "animals", Difficulty: "beginner", Example: "Le chien dort près de la porte."},
	10: {Word: "chat", Category: "animals", Difficulty: "beginner", Example: "Un chat s'est assis sur le mur."},
	11: {Word: "oiseau", Category: "animals", Difficulty: "beginner", Example: "L'oiseau chante à l'aube."},
	12: {Word: "poisson", Category: "animals", Difficulty: "beginner", Example: "Le poisson nage en rond."},
	13: {Word: "lapin", Category: "animals", Difficulty: "intermediate", Example: "Un lapin a traversé le jardin."},
	14: {Word: "cheval", Category: "animals", Difficulty: "intermediate", Example: "Le cheval a sauté la clôture."},
	15: {Word: "train", Category: "travel", Difficulty: "beginner", Example: "Le train part à midi."},
	16: {Word: "billet", Category: "travel", Difficulty: "beginner", Example: "J'ai perdu mon billet."},
	17: {Word: "hôtel", Category: "travel", Difficulty: "beginner", Example: "Notre hôtel est près de la gare."},
	18: {Word: "aéroport", Category: "travel", Difficulty: "intermediate", Example: "L'aéroport était bondé."},
	19: {Word: "bagages", Category: "travel", Difficulty: "intermediate", Example: "Mes bagages sont trop lourds."},
	20: {Word: "itinéraire", Category: "travel", Difficulty: "advanced", Example: "L'itinéraire couvre trois villes."},
}

var germanTable = Table{
	1:  {Word: "Apfel", Category: "food", Difficulty: "beginner", Example: "Ich esse jeden Morgen einen Apfel."},
	2:  {Word: "Brot", Category: "food", Difficulty: "beginner", Example: "Dieses Brot ist noch warm."},
	3:  {Word: "Wasser", Category: "food", Difficulty: "beginner", Example: "Kann ich ein Glas Wasser haben?"},
	4:  {Word: "Milch", Category: "food", Difficulty: "beginner", Example: "Die Milch ist im Kühlschrank."},
	5:  {Word: "Käse", Category: "food", Difficulty: "beginner", Example: "Sie hat Käse auf dem Markt gekauft."},
	6:  {Word: "Frühstück", Category: "food", Difficulty: "intermediate", Example: "Wir haben um acht gefrühstückt."},
	7:  {Word: "Gemüse", Category: "food", Difficulty: "intermediate", Example: "Das Gemüse hier ist frisch."},
	8:  {Word: "Gewürz", Category: "food", Difficulty: "advanced", Example: "Die Suppe braucht mehr Gewürz."},
	9:  {Word: "Hund", Category: "animals", Difficulty: "beginner", Example: "Der Hund schläft an der Tür."},
	10: {Word: "Katze", Category: "animals", Difficulty: "beginner", Example: "Eine Katze saß auf der Mauer."},
	11: {Word: "Vogel", Category: "animals", Difficulty: "beginner", Example: "Der Vogel singt im Morgengrauen."},
	12: {Word: "Fisch", Category: "animals", Difficulty: "beginner", Example: "Der Fisch schwimmt im Kreis."},
	13: {Word: "Kaninchen", Category: "animals", Difficulty: "intermediate", Example: "Ein Kaninchen lief durch den Garten."},
	14: {Word: "Pferd", Category: "animals", Difficulty: "intermediate", Example: "Das Pferd sprang über den Zaun."},
	15: {Word: "Zug", Category: "travel", Difficulty: "beginner", Example: "Der Zug fährt um zwölf."},
	16: {Word: "Fahrkarte", Category: "travel", Difficulty: "beginner", Example: "Ich habe meine Fahrkarte verloren."},
	17: {Word: "Hotel", Category: "travel", Difficulty: "beginner", Example: "Unser Hotel liegt nahe am Bahnhof."},
	18: {Word: "Flughafen", Category: "travel", Difficulty: "intermediate", Example: "Der Flughafen war überfüllt."},
	19: {Word: "Gepäck", Category: "travel", Difficulty: "intermediate", Example: "Mein Gepäck ist zu schwer."},
	20: {Word: "Reiseplan", Category: "travel", Difficulty: "advanced", Example: "Der Reiseplan umfasst drei Städte."},
}
