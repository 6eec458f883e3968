package glyph

import "github.com/restimel/insideCube/engine/vec"

// outlines holds every supported character as a single pen path. X is expressed in units of the
// glyph's maximum half-width and Y in units of its half-height, both centered on the origin with
// Y growing downwards.
var outlines = map[rune][]vec.Point{
	'B': {{-1, -1}, {.3, -1}, {1, -.5}, {.3, 0}, {-1, 0}, {.3, 0}, {1, .5}, {.3, 1}, {-1, 1}, {-1, -1}},
	'C': {{1, -1}, {0, -1}, {-.5, -.9}, {-1, 0}, {-.5, .9}, {0, 1}, {1, 1}},
	'D': {{-1, -1}, {0, -1}, {.5, -.8}, {.95, 0}, {1, 0}, {.95, 0}, {.5, .8}, {0, 1}, {-1, 1}, {-1, -1}},
	'E': {{1, -1}, {-1, -1}, {-1, 0}, {1, 0}, {-1, 0}, {-1, 1}, {1, 1}},
	'I': {{0, -1}, {0, 1}},
	'L': {{-1, -1}, {-1, 1}, {0, .8}},
	'M': {{-1, 1}, {-1, -1}, {0, 0}, {1, -1}, {1, 1}},
	'N': {{-1, 1}, {-1, -1}, {1, 1}, {1, -1}},
	'O': {{0, -1}, {-.5, -.8}, {-1, 0}, {-.5, .8}, {0, 1}, {.5, .8}, {1, 0}, {.5, -.8}, {0, -1}},
	'S': {
		{-1, .8}, {-.6, .9}, {0, 1}, {.5, .8}, {1, .3}, {.5, .1}, {0, 0},
		{-.5, -.1}, {-1, -.3}, {-.5, -.8}, {0, -1}, {.6, -.9}, {1, -.8},
	},
	'U': {{-1, -1}, {-1, .8}, {0, 1}, {1, .8}, {1, -1}},
	'Z': {{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},

	'b': {{-1, .1}, {-.5, 0}, {0, 0}, {.5, .2}, {1, .5}, {.5, .8}, {0, 1}, {-.5, 1}, {-1, .9}, {-1, -1}},
	'c': {{.5, 0}, {0, 0}, {-.5, .2}, {-1, .5}, {-.5, .8}, {0, 1}, {.5, 1}},
	'd': {{1, .1}, {.5, 0}, {0, 0}, {-.5, .2}, {-1, .5}, {-.5, .8}, {0, 1}, {.5, 1}, {1, .9}, {1, -1}},
	'e': {{0, .5}, {1, .5}, {.5, .2}, {0, 0}, {-.5, .2}, {-1, .5}, {-.5, .8}, {0, 1}, {1, 1}},
	'i': {{0, 1}, {0, 0}},
	'm': {{-1, 1}, {-1, 0}, {-1, .1}, {-.5, 0}, {0, .1}, {0, 1}, {0, .1}, {.5, 0}, {1, .1}, {1, 1}},
	'n': {{-1, 1}, {-1, 0}, {-1, .1}, {0, 0}, {1, .1}, {1, 1}},
	'o': {{0, 0}, {-.5, .2}, {-1, .5}, {-.5, .8}, {0, 1}, {.5, .8}, {1, .5}, {.5, .2}, {0, 0}},
	's': {{-1, .9}, {0, 1}, {1, .75}, {0, .5}, {-1, .25}, {0, 0}, {1, .1}},
	'u': {{-1, 0}, {-1, .8}, {0, 1}, {1, .9}, {1, 0}, {1, 1}},
	'z': {{-1, 0}, {1, 0}, {-1, 1}, {1, 1}},

	'³': {{-1, -1}, {0, -.75}, {-.5, -.5}, {0, -.25}, {-1, 0}},
	'.': {{-.2, 1}, {-.1, 1}, {-.1, .9}, {-.2, .9}, {-.2, 1}},
}
