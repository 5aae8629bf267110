package console

import (
	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// SetPlayers assigns each player's mark a display colour.
func (that *Console) SetPlayers(players []entity.Player) {
	for i, player := range players {
		that.palette[player.Mark] = that.output.Color(markColors[i%len(markColors)])
	}
}

func (that *Console) colorize(mark entity.Mark) string {
	style := that.output.String(mark.String())

	color, ok := that.palette[mark]
	if !ok {
		return style.Faint().String()
	}

	return style.Foreground(color).Bold().String()
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.Printf("\n%s\n", board.RenderWith(that.colorize))
}

func (that *Console) AnnounceTurn(player entity.Player) {
	that.Printf("%s turn\n", player)
}

func (that *Console) AnnounceMove(player entity.Player, cell entity.Cell) {
	if player.IsBot() {
		that.Printf("Computer placed %s at %s\n", player.Mark, cell.Human())
	}
}

func (that *Console) AnnounceWin(player entity.Player) {
	that.Printf("%s\n", that.emphasize(player.String()+" wins!"))
}

func (that *Console) AnnounceDraw() {
	that.Printf("%s\n", that.emphasize("It's a draw!"))
}

func (that *Console) emphasize(text string) termenv.Style {
	return that.output.String(text).Bold()
}
