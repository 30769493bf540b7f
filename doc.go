/*
Package coldiff highlights where one column of whitespace separated text
starts to differ from another column of the same line.

Columns are maximal runs of non-whitespace bytes, where only ASCII
whitespace separates columns. They are numbered from 1, left to right.
For each line the “source” column is compared to the “target” column by
common prefix: the part of the target that equals the source from the
first byte on is left as it is, the rest of the target is highlighted.
With source column 1 and target column 2 the line

	bench/a  1.234 1.230

is written as

	bench/a  1.234 1.23<0>

where <0> stands for the highlighted rendering of "0". Lines that do not
have enough columns are written unchanged. Nothing is carried from one
line to the next.

A typical use is comparing two benchmark runs:

	paste old.txt new.txt | coldiff 2,4
*/
package coldiff
