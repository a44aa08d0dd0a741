package catalog

// Datos estáticos de siembra. Los IDs de berries son 1..10 en este orden:
// el roll de forrajeo (d10) depende de que estos IDs existan.
var seedBerries = []Berry{
	{Name: "aspear", ImageURL: "https://archives.bulbagarden.net/media/upload/a/af/Dream_Aspear_Berry_Sprite.png"},
	{Name: "cheri", ImageURL: "https://archives.bulbagarden.net/media/upload/a/a6/Dream_Cheri_Berry_Sprite.png"},
	{Name: "chesto", ImageURL: "https://archives.bulbagarden.net/media/upload/7/7e/Dream_Chesto_Berry_Sprite.png"},
	{Name: "leppa", ImageURL: "https://archives.bulbagarden.net/media/upload/e/e2/Dream_Leppa_Berry_Sprite.png"},
	{Name: "lum", ImageURL: "https://archives.bulbagarden.net/media/upload/d/d3/Dream_Lum_Berry_Sprite.png"},
	{Name: "oran", ImageURL: "https://archives.bulbagarden.net/media/upload/0/0c/Dream_Oran_Berry_Sprite.png"},
	{Name: "pecha", ImageURL: "https://archives.bulbagarden.net/media/upload/6/62/Dream_Pecha_Berry_Sprite.png"},
	{Name: "persim", ImageURL: "https://archives.bulbagarden.net/media/upload/3/38/Dream_Persim_Berry_Sprite.png"},
	{Name: "rawst", ImageURL: "https://archives.bulbagarden.net/media/upload/5/59/Dream_Rawst_Berry_Sprite.png"},
	{Name: "sitrus", ImageURL: "https://archives.bulbagarden.net/media/upload/a/aa/Dream_Sitrus_Berry_Sprite.png"},
}

var seedTypes = []TypeProfile{
	{Name: "bug", FavoriteBerryID: 1, LeastFavoriteBerryID: 2},
	{Name: "dragon", FavoriteBerryID: 2, LeastFavoriteBerryID: 3},
	{Name: "electric", FavoriteBerryID: 3, LeastFavoriteBerryID: 4},
	{Name: "fighting", FavoriteBerryID: 4, LeastFavoriteBerryID: 5},
	{Name: "fire", FavoriteBerryID: 5, LeastFavoriteBerryID: 6},
	{Name: "flying", FavoriteBerryID: 6, LeastFavoriteBerryID: 7},
	{Name: "ghost", FavoriteBerryID: 7, LeastFavoriteBerryID: 8},
	{Name: "grass", FavoriteBerryID: 8, LeastFavoriteBerryID: 9},
	{Name: "ground", FavoriteBerryID: 9, LeastFavoriteBerryID: 10},
	{Name: "ice", FavoriteBerryID: 10, LeastFavoriteBerryID: 1},
	{Name: "normal", FavoriteBerryID: 1, LeastFavoriteBerryID: 2},
	{Name: "poison", FavoriteBerryID: 2, LeastFavoriteBerryID: 3},
	{Name: "psychic", FavoriteBerryID: 3, LeastFavoriteBerryID: 4},
	{Name: "rock", FavoriteBerryID: 4, LeastFavoriteBerryID: 5},
	{Name: "water", FavoriteBerryID: 5, LeastFavoriteBerryID: 6},
	{Name: "fairy", FavoriteBerryID: 6, LeastFavoriteBerryID: 7},
}
