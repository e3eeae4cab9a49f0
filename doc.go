// Package jigsaw is a jigsaw puzzle game for [Ebitengine].
//
// A source image is stretched to a square play area, cut into an N×N grid
// of square pieces, and the pieces are scattered over the area. The player
// drags pieces back into place; a piece released close enough to its home
// cell snaps into it, and once every piece sits on its home cell the board
// shows a "You Win!" banner.
//
// # Board engine
//
// [Board] holds the pieces and the drag state and has no rendering or
// window dependencies, so it can be driven from tests:
//
//	b, err := jigsaw.NewBoard(img, jigsaw.BoardConfig{Resolution: 3})
//	if err != nil {
//		return err
//	}
//	b.PointerDown(x, y)
//	b.PointerMove(x+40, y)
//	b.PointerUp()
//	fmt.Println(b.Won())
//
// Pointer coordinates are world coordinates; [BoardConfig].Origin places the
// play area in the world.
//
// # Images
//
// [LoadImage] reads an [ImageSource]: a local file, an http(s) URL, or a
// file in an [io/fs.FS] such as the files dropped onto the window. PNG, JPEG,
// GIF, BMP and WebP are decoded. [Normalize] produces the square buffer the
// pieces are cut from.
//
// [Mount] loads an image in the background and builds the board once it
// arrives. Its state is polled from the update loop.
//
// # Host shell
//
// [App] implements [ebiten.Game]. It shows a setup screen for choosing the
// image and the grid resolution, and a game screen with Restart and Exit
// buttons above the board. [BoardView] renders a board.
//
// # Configuration
//
// [LoadConfigFile] reads a YAML file. Unset fields keep the values from
// [DefaultConfig].
//
// # Automated play
//
// [LoadTestScript] parses a JSON script of clicks, drags, waits,
// screenshots and game actions. Attach it with [App.SetTestRunner]; it drives
// the app through injected pointer events, one event per frame.
//
// [Ebitengine]: https://ebitengine.org
package jigsaw
