/*
Package expr holds the two arithmetic expression grammars of this module and
assembles the pipelines from input line to parse trace.

The terminals are the operators + - * / ( ) and numbers. A number is written as
'n' or as a run of decimal digits; in traces it always shows as 'n'. The LL(1)
grammar has left recursion removed and rules numbered from 1:

	 1: E ➞ T A        6: B ➞ * F B
	 2: A ➞ + T A      7: B ➞ / F B
	 3: A ➞ - T A      8: B ➞ ε
	 4: A ➞ ε          9: F ➞ ( E )
	 5: T ➞ F B       10: F ➞ n

The LR(1) grammar is the augmented left recursive one, with rules numbered
from 0:

	 0: S' ➞ E     3: E ➞ T      6: T ➞ F
	 1: E ➞ E + T  4: T ➞ T * F  7: F ➞ ( E )
	 2: E ➞ E - T  5: T ➞ T / F  8: F ➞ n

Grammars and tables are created once and shared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr
