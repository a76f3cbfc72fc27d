/*
Package persistent groups immutable persistent double-ended queues.
Every operation on them returns a new version and leaves the original
unchanged, and versions share most of their structure with each other.
Old versions stay usable, even concurrently, and keep their
complexity bounds.

Sub-package deque offers a real-time deque with worst-case O(1) access at
both ends. Sub-package catdeque builds on it and adds concatenation, with
every operation in O(1) amortized time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
