package console

const (
	msgTie            = "Tie game!"
	msgWon            = "%s has won!"
	msgPrompt         = "%s, please enter a next command > "
	msgWins           = "%s has won %d times.\n"
	msgWrongCommand   = "Error! You entered the wrong command"
	msgTryAgain       = "Please try again"
	msgCellFilled     = "This cell is already filled. Please try another one"
	msgGameOver       = "Game over"
	msgBye            = "Bye!"
	msgWrongPositions = "Error! The position is wrong. It does not consist of numbers"
	msgOutOfRange     = "Error! The position is wrong. Please try entering numbers" +
		" which are not less than 1 and not more than 3"

	clearScreen = "\033[H\033[2J"
)

const (
	noteCommPrint = "Command 'print' displays the table of the game.\n" +
		"              To display the table of the game you should write this command WITHOUT parameters.\n" +
		"              Examples: 'print' or 'p'"
	noteCommHelp = "Command 'help' displays instructions for using the program and interface.\n" +
		"              To display instructions write this command WITHOUT parameters.\n" +
		"              Examples: 'help' or 'h'"
	noteCommNew = "Command 'new' creates a new game. Existing field will be deleted.\n" +
		"              For creating a new game you should write this command WITHOUT parameters.\n" +
		"              Example: 'new' or 'n'"
	noteCommQuit = "To quit the program enter the command 'quit' or 'q'.\n" +
		"              Examples: 'quit' or 'q'"
	noteCommMove = "Command 'move' makes a move in the game, if the move is legal.\n" +
		"              To make a move write the command 'move' or 'm' with 2 parameters,\n" +
		"                which should be integers from 1 to 3: row and column.\n" +
		"              Examples: 'move 1 2' or 'm 1 2'."
	noteCommStats = "Command 'stats' prints out amount of wins for both players.\n" +
		"              To show amount of players wins write this command WITHOUT parameters.\n" +
		"              Examples: 'stats' or 's'."
	notePositions = "The positions (the first and the second parameter of the command) must consist of integers"
)

const helpText = "It is the game TicTacToe. There are 2 Players: Player1 and Player2.\n" +
	"Both players make moves into an empty area of the playboard.\n" +
	"The player who places three marks in a row (up, down, across, or diagonally) wins.\n" +
	"\n" +
	"The following commands are available in the game:\n" +
	"- print:  " + noteCommPrint + "\n" +
	"- help:   " + noteCommHelp + "\n" +
	"- new:    " + noteCommNew + "\n" +
	"- quit:   " + noteCommQuit + "\n" +
	"- move:   " + noteCommMove + "\n" +
	"- stats:  " + noteCommStats + "\n" +
	"The program is controlled by expressions: command integer1 integer2.\n" +
	"The parts of the expression are separated by space.\n" +
	"\n" +
	"WELCOME TO THE 'TICTACTOE'"

// notes - per-command hint shown when the command was used wrong.
var notes = map[string]string{
	CommandNew:   noteCommNew,
	CommandHelp:  noteCommHelp,
	CommandStats: noteCommStats,
	CommandMove:  noteCommMove,
	CommandPrint: noteCommPrint,
	CommandQuit:  noteCommQuit,
}
