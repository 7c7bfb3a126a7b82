/* Package main: SIPLI, an interpreter for SIPL programs.

A SIPL program is a flat list of statements separated by semicolons; line
breaks carry no meaning of their own. Blank statements and statements
starting with an underscore are comments, and are dropped before the
program runs. Statements are then addressed by their position in what
remains, starting from the first.

Each statement starts with a keyword, followed by space separated
arguments:

	PRNT text           write text, replacing any $name with its value
	VAR name = expr     assign the value of a postfix expression
	INPT name           read a line of input into a variable
	GOTO label          continue execution at a label
	:label              declare a label
	IF name op val : S  run statement S if the condition holds
	RNG [min] max name  assign a random integer in [min, max)
	DMP                 dump labels and variables to the debug log
	HLP                 write a summary of all statements
	EXIT                stop the program

Every variable holds text. Expressions are written in postfix notation, for
example "x 2 * 1 +" computes x*2+1; they work over integers, and their
result is stored back as decimal text. An expression token written as
"$(...)" evaluates the enclosed expression in place of the entire expression
that contains it.

Conditions compare a variable against a literal: == and != compare text,
while < > <= and >= compare integers. An undefined variable compares as
empty text.

Most errors only skip the statement that caused them: they are reported, and
the program continues with the following statement. A malformed IF
statement, or running out of input to read, stops the program.

*/
package main
