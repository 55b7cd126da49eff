package sqlinline

const QInsertPayment = `--sql e664262a-2a62-45c5-a393-04d4893277a0
insert into payments (id, participant_id, email, amount, payment_method, transaction_id, paid_at, paid_at_string)
values (gen_random_uuid(), $1::uuid, $2::text, $3::numeric, $4::text, $5::text, now(), to_char(now() at time zone 'utc', 'YYYY-MM-DD"T"HH24:MI:SS.MS"Z"'))
returning id, paid_at, paid_at_string;
`

const QSelectPaymentsByEmail = `--sql d8a704d6-6cf0-4ead-87a5-1ae5b457d16a
select id, participant_id, email, amount, payment_method, transaction_id, paid_at, paid_at_string
from payments
where email = $1::text
order by paid_at desc;
`
