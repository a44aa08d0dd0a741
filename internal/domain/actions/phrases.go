package actions

// Frases de juego, elegidas al azar al jugar con la mascota.
var playPhrases = []string{
	" jumps around you!",
	" headbutts you in a friendly way.",
	" nibbles cheekily on your fingers.",
	" chases after the stick you threw!",
	" drops a ball in your lap.",
}
